// Package stats aggregates the completed subset of the book collection
// into summary metrics. All metrics are recomputed fully on each load.
package stats

import (
	"math"
	"strconv"
	"time"

	"goodshelf/internal/entities"
)

// DefaultYearlyGoal is the yearly reading goal before the user sets one.
const DefaultYearlyGoal = 12

const isoDate = "2006-01-02"

// AuthorCount is an author name with its occurrence count across the
// completed books.
type AuthorCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// Summary is the full set of reading metrics.
type Summary struct {
	TotalBooks        int     `json:"total_books"`
	BooksRead         int     `json:"books_read"`
	BooksReading      int     `json:"books_reading"`
	BooksPending      int     `json:"books_pending"`
	TotalPagesRead    int64   `json:"total_pages_read"`
	BooksReadThisYear int     `json:"books_read_this_year"`
	AverageRating     float64 `json:"average_rating"`

	TopAuthor    *AuthorCount   `json:"top_author,omitempty"`
	LongestBook  *entities.Book `json:"longest_book,omitempty"`
	ShortestBook *entities.Book `json:"shortest_book,omitempty"`

	AverageDaysPerBook int `json:"average_days_per_book"`
}

// Compute aggregates the whole collection. The completed subset drives
// every metric except the status counts. now supplies the current year
// for the books-read-this-year count.
func Compute(books []entities.Book, now time.Time) Summary {
	summary := Summary{TotalBooks: len(books)}
	currentYear := strconv.Itoa(now.Year())

	var completed []entities.Book
	for _, book := range books {
		switch {
		case book.Status != nil && *book.Status == entities.StatusCompleted:
			completed = append(completed, book)
		case book.Status != nil && *book.Status == entities.StatusInProgress:
			summary.BooksReading++
		default:
			// NULL status counts as pending here.
			summary.BooksPending++
		}
	}

	summary.BooksRead = len(completed)
	for _, book := range completed {
		summary.TotalPagesRead += book.PagesOrZero()
		if book.EndDate != nil && len(*book.EndDate) >= 4 && (*book.EndDate)[:4] == currentYear {
			summary.BooksReadThisYear++
		}
	}

	summary.AverageRating = averageRating(completed)
	summary.TopAuthor = topAuthor(completed)
	summary.LongestBook, summary.ShortestBook = pageRecords(completed)
	summary.AverageDaysPerBook = averageDaysPerBook(completed)

	return summary
}

// averageRating is the mean rating over completed books with a rating
// above zero, rounded half-up to one decimal place. No qualifying books
// yields 0.0.
func averageRating(completed []entities.Book) float64 {
	var sum, count int64
	for _, book := range completed {
		if book.Rating != nil && *book.Rating > 0 {
			sum += *book.Rating
			count++
		}
	}
	if count == 0 {
		return 0.0
	}
	avg := float64(sum) / float64(count)
	return math.Round(avg*10) / 10
}

// topAuthor counts individual author names across the completed books.
// Ties go to the author first encountered in collection order.
func topAuthor(completed []entities.Book) *AuthorCount {
	counts := make(map[string]int)
	var order []string
	for _, book := range completed {
		for _, name := range book.AuthorList() {
			if _, seen := counts[name]; !seen {
				order = append(order, name)
			}
			counts[name]++
		}
	}
	if len(order) == 0 {
		return nil
	}

	best := AuthorCount{Name: order[0], Count: counts[order[0]]}
	for _, name := range order[1:] {
		if counts[name] > best.Count {
			best = AuthorCount{Name: name, Count: counts[name]}
		}
	}
	return &best
}

// pageRecords finds the longest and shortest completed book. For the
// longest, a missing page count participates as 0. For the shortest,
// books with no pages (or 0) are excluded entirely. The asymmetry is
// inherited behavior, not an accident.
func pageRecords(completed []entities.Book) (longest, shortest *entities.Book) {
	for i := range completed {
		book := &completed[i]
		if longest == nil || book.PagesOrZero() > longest.PagesOrZero() {
			longest = book
		}
		if book.PagesOrZero() > 0 {
			if shortest == nil || book.PagesOrZero() < shortest.PagesOrZero() {
				shortest = book
			}
		}
	}
	return longest, shortest
}

// averageDaysPerBook averages the reading span of completed books with
// both dates parseable and a non-negative span, floored to whole days and
// clamped to at least 1 when any book qualifies. Malformed dates are
// silently excluded.
func averageDaysPerBook(completed []entities.Book) int {
	var totalDays int64
	var count int64
	for _, book := range completed {
		if book.StartDate == nil || book.EndDate == nil {
			continue
		}
		start, err := time.Parse(isoDate, *book.StartDate)
		if err != nil {
			continue
		}
		end, err := time.Parse(isoDate, *book.EndDate)
		if err != nil {
			continue
		}
		days := int64(end.Sub(start) / (24 * time.Hour))
		if days < 0 {
			continue
		}
		totalDays += days
		count++
	}
	if count == 0 {
		return 0
	}
	avg := int(totalDays / count)
	if avg < 1 {
		avg = 1
	}
	return avg
}

// Package rules holds the lending policy: loan window, fines, membership
// periods and field validation. Everything here is pure.
package rules

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/Astemirdum/library-desk/library/internal/errs"
	"github.com/Astemirdum/library-desk/library/internal/model"
)

const (
	// FinePerDay is charged for every day past the expected return date, uncapped.
	FinePerDay = 1.0
	// MaxLoanDays bounds expected_return_date - issue_date.
	MaxLoanDays = 15
)

const secondsPerDay = 24 * 60 * 60

var serialRe = regexp.MustCompile(`^[A-Za-z0-9-]+$`)

var durations = map[int]bool{6: true, 12: true, 24: true}

// DaysLate counts whole civil days between two midnight dates. It works on
// unix seconds because time.Duration saturates past ~292 years.
func DaysLate(actual, expected model.Date) int {
	days := int((actual.Unix() - expected.Unix()) / secondsPerDay)
	if days < 0 {
		return 0
	}
	return days
}

func ComputeFine(actual, expected model.Date) float64 {
	return float64(DaysLate(actual, expected)) * FinePerDay
}

func ValidateIssue(req model.IssueRequest, today model.Date) error {
	v := new(errs.ValidationError)
	if req.ItemID <= 0 {
		v.Add("itemId", "please select an item to issue")
	}
	if req.IssueDate.IsZero() {
		v.Add("issueDate", "required")
	} else if req.IssueDate.Before(today) {
		v.Add("issueDate", "cannot be earlier than today")
	}
	switch {
	case req.ReturnDate.IsZero():
		v.Add("returnDate", "required")
	case req.IssueDate.IsZero():
	case req.ReturnDate.Before(req.IssueDate):
		v.Add("returnDate", "cannot be earlier than the issue date")
	case req.ReturnDate.After(req.IssueDate.AddDays(MaxLoanDays)):
		v.Add("returnDate", fmt.Sprintf("cannot be more than %d days from the issue date", MaxLoanDays))
	}
	return v.Err()
}

// CanSettleFine blocks settlement of a positive fine that is not confirmed paid.
func CanSettleFine(fineAmount float64, finePaid bool) error {
	if fineAmount > 0 && !finePaid {
		return errs.ErrFineUnpaid
	}
	return nil
}

func ValidSerial(serial string) bool {
	return serialRe.MatchString(serial)
}

func ValidateItem(req model.ItemRequest) error {
	v := new(errs.ValidationError)
	if strings.TrimSpace(req.Title) == "" {
		v.Add("title", "required")
	}
	if strings.TrimSpace(req.Author) == "" {
		v.Add("author", "required")
	}
	if req.SerialNumber == "" {
		v.Add("serialNumber", "required")
	} else if !ValidSerial(req.SerialNumber) {
		v.Add("serialNumber", "only letters, digits and hyphens are allowed")
	}
	if req.Type != "" && req.Type != model.ItemTypeBook && req.Type != model.ItemTypeMovie {
		v.Add("type", "must be book or movie")
	}
	return v.Err()
}

func ValidDuration(months int) bool {
	return durations[months]
}

// AddMonths adds calendar months, clamping to the last day of the target month.
func AddMonths(d model.Date, months int) model.Date {
	y, m, day := d.Date()
	first := time.Date(y, m+time.Month(months), 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1).Day()
	if day > last {
		day = last
	}
	return model.NewDate(first.Year(), first.Month(), day)
}

func MembershipEndDate(start model.Date, months int) model.Date {
	return AddMonths(start, months)
}

// ExtendedEndDate counts the extension from the later of the current end and today.
func ExtendedEndDate(currentEnd, today model.Date, months int) model.Date {
	base := currentEnd
	if today.After(base) {
		base = today
	}
	return AddMonths(base, months)
}

func ValidateNewMembership(req model.CreateMembershipRequest, today model.Date) error {
	v := new(errs.ValidationError)
	if req.StartDate.IsZero() {
		v.Add("startDate", "required")
	} else if req.StartDate.Before(today) {
		v.Add("startDate", "cannot be earlier than today")
	}
	if !ValidDuration(req.Duration) {
		v.Add("duration", "must be 6, 12 or 24 months")
	}
	return v.Err()
}

func ValidateMembershipUpdate(req model.UpdateMembershipRequest) error {
	v := new(errs.ValidationError)
	switch req.Action {
	case model.ActionExtend:
		if !ValidDuration(req.Duration) {
			v.Add("duration", "must be 6, 12 or 24 months")
		}
	case model.ActionCancel:
	default:
		v.Add("action", "must be extend or cancel")
	}
	return v.Err()
}

// MembershipNumber renders MEM-<last 6 digits of unix millis>-<rnd mod 1000, 3 digits>.
func MembershipNumber(now time.Time, rnd int) string {
	return fmt.Sprintf("MEM-%06d-%03d", now.UnixMilli()%1_000_000, rnd%1000)
}

// DisplayName derives a user name from the local part of an email address.
func DisplayName(email string) string {
	if i := strings.IndexByte(email, '@'); i > 0 {
		return email[:i]
	}
	return email
}

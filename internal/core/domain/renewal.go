package domain

import "time"

// renewalDay is the day of the month every renewal falls on.
const renewalDay = 10

// ComputeDueDate derives a vehicle's registration renewal date from the last
// digit of its plate, mirroring the public inspection rotation: digit 0 maps
// to October, digits 1-9 to the month of the same number. The due date is the
// 10th of that month in now's year, pushed to the next year when the day has
// already passed.
//
// Returns ErrInvalidPlate when the plate is empty or its last character is
// not a decimal digit.
func ComputeDueDate(plate string, now time.Time) (Date, error) {
	if plate == "" {
		return Date{}, ErrInvalidPlate
	}

	last := plate[len(plate)-1]
	if last < '0' || last > '9' {
		return Date{}, ErrInvalidPlate
	}

	month := time.Month(last - '0')
	if month == 0 {
		month = time.October
	}

	today := NewDate(now)
	due := Date{time.Date(now.Year(), month, renewalDay, 0, 0, 0, 0, time.UTC)}
	if due.Before(today.Time) {
		due = Date{due.AddDate(1, 0, 0)}
	}
	return due, nil
}

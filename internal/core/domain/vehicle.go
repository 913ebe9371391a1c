package domain

import "time"

const dateLayout = "2006-01-02"

// Date is a calendar day without a time component. The registration due date
// travels on the wire as "2006-01-02".
type Date struct {
	time.Time
}

// NewDate truncates t to its calendar day.
func NewDate(t time.Time) Date {
	return Date{time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)}
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(dateLayout) + `"`), nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	s := string(b)
	if s == "null" || s == `""` {
		*d = Date{}
		return nil
	}
	t, err := time.Parse(`"`+dateLayout+`"`, s)
	if err != nil {
		return err
	}
	*d = Date{t}
	return nil
}

// Vehicle belongs to exactly one client. Plate and renavam are unique across
// all vehicles; DueDate is always derived from the plate, never supplied by
// the caller.
type Vehicle struct {
	ID       int64  `json:"id"`
	Plate    string `json:"placa"`
	Renavam  string `json:"renavam"`
	DueDate  Date   `json:"vencimento"`
	ClientID int64  `json:"clienteId"`
}

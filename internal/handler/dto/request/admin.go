package request

import "time"

// RunIssuanceRequest replays the daily issuance for a past date when Date is set.
type RunIssuanceRequest struct {
	Date *string `json:"date,omitempty" binding:"omitempty,datetime=2006-01-02"`
}

// Day returns the zero time when no date was given.
func (r RunIssuanceRequest) Day(loc *time.Location) (time.Time, error) {
	d, err := parseOptionalDate(r.Date, loc)
	if err != nil || d == nil {
		return time.Time{}, err
	}
	return *d, nil
}

type ActivateMembershipRequest struct {
	ActivatedAt *time.Time `json:"activatedAt,omitempty"`
}

func parseOptionalDate(s *string, loc *time.Location) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation(time.DateOnly, *s, loc)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

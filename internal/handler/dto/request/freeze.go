package request

import (
	"time"

	"clubhouse/internal/usecase/commands"
)

type CreateFreezeRequest struct {
	StartDate      string `json:"startDate" binding:"required,datetime=2006-01-02"`
	DurationMonths int    `json:"durationMonths" binding:"required,min=1,max=2"`
}

// ToInput reads the start date as a calendar day in the club's time zone.
func (r CreateFreezeRequest) ToInput(loc *time.Location) (commands.RequestFreezeInput, error) {
	start, err := time.ParseInLocation(time.DateOnly, r.StartDate, loc)
	if err != nil {
		return commands.RequestFreezeInput{}, err
	}
	return commands.RequestFreezeInput{
		StartDate:      start,
		DurationMonths: r.DurationMonths,
	}, nil
}

// ApproveFreezeRequest optionally moves the freeze to a different start date.
type ApproveFreezeRequest struct {
	StartDate *string `json:"startDate,omitempty" binding:"omitempty,datetime=2006-01-02"`
}

func (r ApproveFreezeRequest) StartOverride(loc *time.Location) (*time.Time, error) {
	return parseOptionalDate(r.StartDate, loc)
}

type RejectFreezeRequest struct {
	Reason string `json:"reason" binding:"required,max=500"`
}

package dto

import (
	"fmt"

	"github.com/google/uuid"

	"braidr/internal/availability"
	"braidr/internal/domains/stylist/model"
	"braidr/shared"
	gDto "braidr/shared/dto"
	gModel "braidr/shared/model"
	"braidr/shared/timezone"
)

type CreateStylistRequest struct {
	DisplayName string `json:"display_name" validate:"required,max=100"`
	Bio         string `json:"bio"          validate:"omitempty,max=1000"`
	IsAvailable *bool  `json:"is_available" validate:"omitempty"`
}

func (c *CreateStylistRequest) ToModel(user string) model.Stylist {
	available := true
	if c.IsAvailable != nil {
		available = *c.IsAvailable
	}

	return model.Stylist{
		ID:          uuid.NewString(),
		DisplayName: c.DisplayName,
		Bio:         c.Bio,
		IsAvailable: available,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateStylistRequest struct {
	DisplayName string `db:"display_name" json:"display_name" validate:"omitempty,max=100"`
	Bio         string `db:"bio"          json:"bio"          validate:"omitempty,max=1000"`
	IsAvailable *bool  `db:"is_available" json:"is_available" validate:"omitempty"`
}

type StylistResponse struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	Bio         string `json:"bio"`
	IsAvailable bool   `json:"is_available"`
	gDto.Metadata
}

func (r *StylistResponse) FromModel(model model.Stylist) {
	r.ID = model.ID
	r.DisplayName = model.DisplayName
	r.Bio = model.Bio
	r.IsAvailable = model.IsAvailable
	r.Metadata.FromModel(model.Metadata)
}

type GetStylistsResponse struct {
	Stylists  []StylistResponse `json:"stylists"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetStylistsResponse) FromModels(models []model.Stylist, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Stylists = make([]StylistResponse, len(models))
	for i, mod := range models {
		r.Stylists[i].FromModel(mod)
	}
}

type WorkingHourEntry struct {
	Weekday   int    `json:"weekday"    validate:"min=0,max=6"`
	IsOpen    bool   `json:"is_open"`
	StartTime string `json:"start_time" validate:"omitempty,hhmm"`
	EndTime   string `json:"end_time"   validate:"omitempty,hhmm"`
}

type PutWorkingHoursRequest struct {
	Hours []WorkingHourEntry `json:"hours" validate:"required,min=1,max=7,dive"`
}

// ToModels converts the request into working-hour rows for one stylist. Open
// days must carry a well-formed window; duplicate weekdays are rejected.
func (p *PutWorkingHoursRequest) ToModels(stylistID, user string) ([]model.WorkingHour, error) {
	seen := map[int]bool{}
	hours := make([]model.WorkingHour, 0, len(p.Hours))

	for _, entry := range p.Hours {
		if seen[entry.Weekday] {
			return nil, fmt.Errorf("duplicate weekday %d", entry.Weekday)
		}

		seen[entry.Weekday] = true

		hour := model.WorkingHour{
			ID:        uuid.NewString(),
			StylistID: stylistID,
			Weekday:   entry.Weekday,
			IsOpen:    entry.IsOpen,
			Metadata: gModel.Metadata{
				CreatedAt:  timezone.Now(),
				ModifiedAt: timezone.Now(),
				CreatedBy:  user,
				ModifiedBy: user,
			},
		}

		if entry.IsOpen {
			open, err := availability.ParseClock(entry.StartTime)
			if err != nil {
				return nil, fmt.Errorf("weekday %d: %w", entry.Weekday, err)
			}

			closeAt, err := availability.ParseClock(entry.EndTime)
			if err != nil {
				return nil, fmt.Errorf("weekday %d: %w", entry.Weekday, err)
			}

			if closeAt <= open {
				return nil, fmt.Errorf("weekday %d: end time must be after start time", entry.Weekday)
			}

			hour.OpenMinute = open
			hour.CloseMinute = closeAt
		}

		hours = append(hours, hour)
	}

	return hours, nil
}

type WorkingHourResponse struct {
	Weekday   int    `json:"weekday"`
	IsOpen    bool   `json:"is_open"`
	StartTime string `json:"start_time,omitempty"`
	EndTime   string `json:"end_time,omitempty"`
}

func (r *WorkingHourResponse) FromModel(model model.WorkingHour) {
	r.Weekday = model.Weekday
	r.IsOpen = model.IsOpen

	if model.IsOpen {
		r.StartTime = availability.FormatClock(model.OpenMinute)
		r.EndTime = availability.FormatClock(model.CloseMinute)
	}
}

type GetWorkingHoursResponse struct {
	StylistID string                `json:"stylist_id"`
	Hours     []WorkingHourResponse `json:"hours"`
}

func (r *GetWorkingHoursResponse) FromModels(stylistID string, models []model.WorkingHour) {
	r.StylistID = stylistID

	r.Hours = make([]WorkingHourResponse, len(models))
	for i, mod := range models {
		r.Hours[i].FromModel(mod)
	}
}

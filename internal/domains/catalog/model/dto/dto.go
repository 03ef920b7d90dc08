package dto

import (
	"github.com/google/uuid"

	"braidr/internal/domains/catalog/model"
	"braidr/shared"
	gDto "braidr/shared/dto"
	gModel "braidr/shared/model"
	"braidr/shared/timezone"
)

type CreateServiceRequest struct {
	StylistID       string `json:"stylist_id"       validate:"required"`
	Name            string `json:"name"             validate:"required,max=100"`
	DurationMinutes int    `json:"duration_minutes" validate:"required,gt=0"`
	PriceCents      int    `json:"price_cents"      validate:"omitempty,gte=0"`
	Active          *bool  `json:"active"           validate:"omitempty"`
}

func (c *CreateServiceRequest) ToModel(user string) model.Service {
	active := true
	if c.Active != nil {
		active = *c.Active
	}

	return model.Service{
		ID:              uuid.NewString(),
		StylistID:       c.StylistID,
		Name:            c.Name,
		DurationMinutes: c.DurationMinutes,
		PriceCents:      c.PriceCents,
		Active:          active,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateServiceRequest struct {
	Name            string `db:"name"             json:"name"             validate:"omitempty,max=100"`
	DurationMinutes int    `db:"duration_minutes" json:"duration_minutes" validate:"omitempty,gt=0"`
	PriceCents      *int   `db:"price_cents"      json:"price_cents"      validate:"omitempty,gte=0"`
	Active          *bool  `db:"active"           json:"active"           validate:"omitempty"`
}

type ServiceResponse struct {
	ID              string `json:"id"`
	StylistID       string `json:"stylist_id"`
	Name            string `json:"name"`
	DurationMinutes int    `json:"duration_minutes"`
	PriceCents      int    `json:"price_cents"`
	Active          bool   `json:"active"`
	gDto.Metadata
}

func (r *ServiceResponse) FromModel(model model.Service) {
	r.ID = model.ID
	r.StylistID = model.StylistID
	r.Name = model.Name
	r.DurationMinutes = model.DurationMinutes
	r.PriceCents = model.PriceCents
	r.Active = model.Active
	r.Metadata.FromModel(model.Metadata)
}

type GetServicesResponse struct {
	Services  []ServiceResponse `json:"services"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetServicesResponse) FromModels(models []model.Service, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Services = make([]ServiceResponse, len(models))
	for i, mod := range models {
		r.Services[i].FromModel(mod)
	}
}

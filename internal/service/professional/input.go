package professional

import (
	"github.com/diegoportaz91-dot/saludvalleuco/internal/model"
	"github.com/diegoportaz91-dot/saludvalleuco/pkg/apperror"
)

// Input is a submitted create/edit form. Optional fields arrive as plain
// strings; empty submissions normalize to absence when applied.
type Input struct {
	Name      string `form:"name" json:"name"`
	Specialty string `form:"specialty" json:"specialty"`
	Location  string `form:"location" json:"location"`
	Phone     string `form:"phone" json:"phone"`
	Plan      string `form:"plan" json:"plan"`
	Available bool   `form:"available" json:"available"`

	PhotoURL          string   `form:"photo_url" json:"photo_url"`
	Address           string   `form:"address" json:"address"`
	Schedule          string   `form:"schedule" json:"schedule"`
	Whatsapp          string   `form:"whatsapp" json:"whatsapp"`
	ContactType       string   `form:"contact_type" json:"contact_type"`
	InsuranceCoverage string   `form:"insurance_coverage" json:"insurance_coverage"`
	Description       string   `form:"description" json:"description"`
	Latitude          *float64 `form:"latitude" json:"latitude"`
	Longitude         *float64 `form:"longitude" json:"longitude"`
}

// Validate checks required fields, catalog membership and coordinate
// ranges. It rejects at the form boundary with field-level messages and no
// store mutation.
func (in *Input) Validate() error {
	fields := map[string]string{}

	if in.Name == "" {
		fields["name"] = "el nombre es obligatorio"
	}
	if in.Specialty == "" {
		fields["specialty"] = "la especialidad es obligatoria"
	} else if !model.ValidSpecialty(in.Specialty) {
		fields["specialty"] = "especialidad inválida"
	}
	if in.Location == "" {
		fields["location"] = "la localidad es obligatoria"
	} else if !model.ValidLocation(in.Location) {
		fields["location"] = "localidad inválida"
	}
	if in.Phone == "" {
		fields["phone"] = "el teléfono es obligatorio"
	}
	if in.Plan != "" && !model.ValidPlan(in.Plan) {
		fields["plan"] = "plan inválido"
	}
	if in.ContactType != "" && !model.ValidContactType(in.ContactType) {
		fields["contact_type"] = "tipo de contacto inválido"
	}
	if in.Latitude != nil && (*in.Latitude < -90 || *in.Latitude > 90) {
		fields["latitude"] = "la latitud debe estar entre -90 y 90"
	}
	if in.Longitude != nil && (*in.Longitude < -180 || *in.Longitude > 180) {
		fields["longitude"] = "la longitud debe estar entre -180 y 180"
	}

	if len(fields) > 0 {
		return apperror.Validation(fields)
	}
	return nil
}

// apply copies every form field onto the listing. The mapping is explicit so
// a dropped or misnamed field fails to compile instead of silently vanishing.
func (in *Input) apply(p *model.Professional) {
	p.Name = in.Name
	p.Specialty = in.Specialty
	p.Location = in.Location
	p.Phone = in.Phone
	p.Plan = planOrDefault(in.Plan)
	p.Available = in.Available
	p.PhotoURL = nilIfEmpty(in.PhotoURL)
	p.Address = nilIfEmpty(in.Address)
	p.Schedule = nilIfEmpty(in.Schedule)
	p.Whatsapp = nilIfEmpty(in.Whatsapp)
	p.ContactType = contactTypeOrDefault(in.ContactType)
	p.InsuranceCoverage = nilIfEmpty(in.InsuranceCoverage)
	p.Description = nilIfEmpty(in.Description)
	p.Latitude = in.Latitude
	p.Longitude = in.Longitude
}

func nilIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func planOrDefault(s string) model.Plan {
	if s == "" {
		return model.PlanBasic
	}
	return model.Plan(s)
}

func contactTypeOrDefault(s string) model.ContactType {
	if s == "" {
		return model.ContactPhone
	}
	return model.ContactType(s)
}

package dto

import (
	"encoding/json"

	"vaga-hub/internal/domain/user"

	"github.com/google/uuid"
)

// SkillPayload accepts both skill shapes the frontend has historically
// sent: a bare string ("React") or an object ({"name":"React","level":70}).
type SkillPayload struct {
	Name  string
	Level int
}

func (s *SkillPayload) UnmarshalJSON(b []byte) error {
	var name string
	if err := json.Unmarshal(b, &name); err == nil {
		s.Name = name
		s.Level = 0
		return nil
	}

	var obj struct {
		Name  string `json:"name"`
		Level int    `json:"level"`
	}
	if err := json.Unmarshal(b, &obj); err != nil {
		return err
	}
	s.Name = obj.Name
	s.Level = obj.Level
	return nil
}

type ExperiencePayload struct {
	Company     string `json:"company"`
	Position    string `json:"position"`
	Level       string `json:"level"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	Description string `json:"description"`
}

type EducationPayload struct {
	Institution    string `json:"institution"`
	Degree         string `json:"degree"`
	Field          string `json:"field"`
	GraduationDate string `json:"graduation_date"`
}

type PortfolioLinkPayload struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

type ProfileRequest struct {
	DesiredPosition string                 `json:"desired_position"`
	Location        string                 `json:"location"`
	Bio             string                 `json:"bio"`
	LinkedinURL     string                 `json:"linkedin_url"`
	AvatarURL       string                 `json:"avatar_url"`
	ContactMethod   string                 `json:"contact_method"`
	ContactValue    string                 `json:"contact_value"`
	Skills          []SkillPayload         `json:"skills"`
	Experience      []ExperiencePayload    `json:"experience"`
	Education       []EducationPayload     `json:"education"`
	PortfolioLinks  []PortfolioLinkPayload `json:"portfolio_links"`
}

func (r ProfileRequest) ToProfile(userID uuid.UUID) user.Profile {
	p := user.Profile{
		UserID:          userID,
		DesiredPosition: r.DesiredPosition,
		Location:        r.Location,
		Bio:             r.Bio,
		LinkedinURL:     r.LinkedinURL,
		AvatarURL:       r.AvatarURL,
		ContactMethod:   r.ContactMethod,
		ContactValue:    r.ContactValue,
	}
	for _, s := range r.Skills {
		p.Skills = append(p.Skills, user.NormalizeSkill(s.Name, s.Level))
	}
	for _, e := range r.Experience {
		p.Experience = append(p.Experience, user.Experience(e))
	}
	for _, e := range r.Education {
		p.Education = append(p.Education, user.Education(e))
	}
	for _, l := range r.PortfolioLinks {
		p.PortfolioLinks = append(p.PortfolioLinks, user.PortfolioLink(l))
	}
	return p
}

type SkillResponse struct {
	Name  string `json:"name"`
	Level int    `json:"level"`
}

type ProfileResponse struct {
	UserID          uuid.UUID              `json:"user_id"`
	DesiredPosition string                 `json:"desired_position"`
	Location        string                 `json:"location"`
	Bio             string                 `json:"bio"`
	LinkedinURL     string                 `json:"linkedin_url"`
	AvatarURL       string                 `json:"avatar_url"`
	ContactMethod   string                 `json:"contact_method"`
	ContactValue    string                 `json:"contact_value"`
	Skills          []SkillResponse        `json:"skills"`
	Experience      []ExperiencePayload    `json:"experience"`
	Education       []EducationPayload     `json:"education"`
	PortfolioLinks  []PortfolioLinkPayload `json:"portfolio_links"`
}

func FromProfile(p user.Profile) ProfileResponse {
	out := ProfileResponse{
		UserID:          p.UserID,
		DesiredPosition: p.DesiredPosition,
		Location:        p.Location,
		Bio:             p.Bio,
		LinkedinURL:     p.LinkedinURL,
		AvatarURL:       p.AvatarURL,
		ContactMethod:   p.ContactMethod,
		ContactValue:    p.ContactValue,
		Skills:          make([]SkillResponse, 0, len(p.Skills)),
		Experience:      make([]ExperiencePayload, 0, len(p.Experience)),
		Education:       make([]EducationPayload, 0, len(p.Education)),
		PortfolioLinks:  make([]PortfolioLinkPayload, 0, len(p.PortfolioLinks)),
	}
	for _, s := range p.Skills {
		out.Skills = append(out.Skills, SkillResponse(s))
	}
	for _, e := range p.Experience {
		out.Experience = append(out.Experience, ExperiencePayload(e))
	}
	for _, e := range p.Education {
		out.Education = append(out.Education, EducationPayload(e))
	}
	for _, l := range p.PortfolioLinks {
		out.PortfolioLinks = append(out.PortfolioLinks, PortfolioLinkPayload(l))
	}
	return out
}

package domain

import "time"

type ContentShow struct {
	ID           string    `json:"id" gorm:"primaryKey;type:text"`
	Title        string    `json:"title" gorm:"column:title;type:text"`
	Genre        string    `json:"genre" gorm:"column:genre;type:text"`
	Region       string    `json:"region" gorm:"column:region;type:text"`
	ViewingHours float64   `json:"viewing_hours" gorm:"column:viewing_hours;type:numeric"`
	Rating       float64   `json:"rating" gorm:"column:rating;type:numeric"`
	CreatedAt    time.Time `json:"created_at" gorm:"column:created_at"`
}

func (ContentShow) TableName() string {
	return "content_shows"
}

// AttributeSet exposes the show's catalog attributes in the same
// "key=value" form cohorts use, so correlation can compare them directly.
func (s ContentShow) AttributeSet() map[string]struct{} {
	set := make(map[string]struct{}, 2)
	if s.Genre != "" {
		set["genre="+s.Genre] = struct{}{}
	}
	if s.Region != "" {
		set["region="+s.Region] = struct{}{}
	}
	return set
}

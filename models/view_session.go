package models

import "time"

// Theme values accepted by the view session.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// ViewSession is the explicit application-state container for one calendar
// view: the visible month, the theme preference, and a refresh counter.
// Every mutation bumps Generation; a fetch cycle's result is published only
// if its generation is still current, so a superseded in-flight cycle can
// never overwrite a newer one.
type ViewSession struct {
	ID           string    `json:"id"`
	Resource     string    `json:"resource"`
	Month        string    `json:"month"` // "2026-03", in the calendar zone
	Theme        string    `json:"theme"`
	RefreshCount int       `json:"refreshCount"`
	Generation   int64     `json:"generation"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

package pod

import "time"

type Pod struct {
	ID        string
	Name      string
	CreatedAt time.Time
}

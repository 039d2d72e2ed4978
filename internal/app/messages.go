package app

import "time"

type toastExpiredMsg struct {
	at time.Time
}

package services

import (
	"log"
	"time"

	"github.com/RzkyNT/E-Masjid-sub001/app/database"
)

// StartScheduler starts the background task scheduler. On the first day of
// each month it closes the previous month without force, so a recap an
// operator already generated is left alone.
func StartScheduler(recaps *RecapEngine) {
	go func() {
		log.Println("Scheduler started...")
		ticker := time.NewTicker(1 * time.Minute)
		defer ticker.Stop()

		for range ticker.C {
			now := time.Now()

			// Trigger at 00:30 on the 1st
			if now.Day() == 1 && now.Hour() == 0 && now.Minute() == 30 {
				prev := now.AddDate(0, -1, 0)
				log.Printf("Triggering scheduled recap for %02d/%d...", int(prev.Month()), prev.Year())

				_, err := recaps.Generate(int(prev.Month()), prev.Year(), false, "scheduler")
				if err == database.ErrAlreadyExists {
					log.Printf("Recap for %02d/%d already exists, skipping", int(prev.Month()), prev.Year())
				} else if err != nil {
					log.Printf("Error generating scheduled recap: %v", err)
				}
			}
		}
	}()
}

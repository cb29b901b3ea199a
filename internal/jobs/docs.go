// Package jobs provides scheduled background tasks for the ordering service.
//
// Jobs use github.com/robfig/cron/v3 with a seconds field.
//
// # Available Jobs
//
// OrderFulfillmentJob delivers the next pending order on a schedule, standing in for a
// kitchen that hands out orders at a steady pace. It is enabled by AUTO_FULFILL_SCHEDULE.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(fulfillHandler, "*/30 * * * * *", logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// An empty pending queue is the normal idle state and is not logged. Any other
// failure is logged as an error; the schedule keeps running.
package jobs

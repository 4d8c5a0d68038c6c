package handler

import (
	"net/http"

	"github.com/vfg2006/ads-autopilot-api/internal/api/handler/router"
	"github.com/vfg2006/ads-autopilot-api/internal/usecases/scheduling"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Schedules(service scheduling.SchedulingService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/accounts/:id/schedules",
			Method:  http.MethodGet,
			Handler: GetSchedule(service),
		},
		{
			Path:    "/v1/accounts/:id/schedules",
			Method:  http.MethodPost,
			Handler: AddSchedule(service),
		},
		{
			Path:    "/v1/accounts/:id/schedules",
			Method:  http.MethodDelete,
			Handler: DeleteSchedule(service),
		},
		{
			Path:    "/v1/accounts/:id/schedules/slots",
			Method:  http.MethodPost,
			Handler: AppendScheduleSlots(service),
		},
		{
			Path:    "/v1/accounts/:id/schedules/slots/:slot",
			Method:  http.MethodPut,
			Handler: EditScheduleSlot(service),
		},
		{
			Path:    "/v1/accounts/:id/schedules/slots/:slot",
			Method:  http.MethodDelete,
			Handler: RemoveScheduleSlot(service),
		},
		{
			Path:    "/v1/accounts/:id/schedules/status",
			Method:  http.MethodPut,
			Handler: SetScheduleStatus(service),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}

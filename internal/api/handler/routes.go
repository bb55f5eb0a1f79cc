package handler

import (
	"net/http"

	"github.com/boraedu/bora-hub-api/internal/api/handler/router"
	"github.com/boraedu/bora-hub-api/internal/usecases/agenda"
	"github.com/boraedu/bora-hub-api/internal/usecases/attaching"
	"github.com/boraedu/bora-hub-api/internal/usecases/authenticating"
	"github.com/boraedu/bora-hub-api/internal/usecases/developing"
	"github.com/boraedu/bora-hub-api/internal/usecases/mentoring"
	"github.com/boraedu/bora-hub-api/internal/usecases/okrtracking"
	"github.com/boraedu/bora-hub-api/internal/usecases/publishing"
	"github.com/boraedu/bora-hub-api/internal/usecases/reconciling"
	"github.com/boraedu/bora-hub-api/internal/usecases/reporting"
	"github.com/boraedu/bora-hub-api/internal/usecases/selling"
	"github.com/boraedu/bora-hub-api/internal/usecases/sponsoring"
	"github.com/boraedu/bora-hub-api/internal/usecases/tasking"
	"github.com/boraedu/bora-hub-api/internal/usecases/ticketing"
	"github.com/boraedu/bora-hub-api/pkg/middleware"
)

type routeMiddleware = func(http.Handler) http.Handler

var (
	adminOnly      = []routeMiddleware{middleware.AdminOnly()}
	adminOrManager = []routeMiddleware{middleware.AdminOrManager()}
	allRoles       = []routeMiddleware{middleware.AllRoles()}
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

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:        "/v1/users/:id/generate-password",
			Method:      http.MethodPost,
			Handler:     GeneratePassword(service),
			Middlewares: adminOnly,
		},
		{
			Path:        "/v1/users/:id/change-password",
			Method:      http.MethodPost,
			Handler:     ChangePassword(service),
			Middlewares: allRoles,
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: allRoles,
		},
	}
}

func User(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/users",
			Method:      http.MethodGet,
			Handler:     ListUsers(service),
			Middlewares: adminOrManager,
		},
		{
			Path:        "/v1/users",
			Method:      http.MethodPost,
			Handler:     CreateUser(service),
			Middlewares: adminOnly,
		},
		{
			Path:        "/v1/users/:id",
			Method:      http.MethodGet,
			Handler:     GetUser(service),
			Middlewares: allRoles,
		},
		{
			Path:        "/v1/users/:id",
			Method:      http.MethodPut,
			Handler:     UpdateUser(service),
			Middlewares: allRoles,
		},
	}
}

func Tickets(service ticketing.Ticketing) []router.Route {
	return []router.Route{
		{Path: "/v1/tickets", Method: http.MethodPost, Handler: CreateTicket(service), Middlewares: allRoles},
		{Path: "/v1/tickets", Method: http.MethodGet, Handler: ListTickets(service), Middlewares: allRoles},
		{Path: "/v1/tickets/:id", Method: http.MethodGet, Handler: GetTicket(service), Middlewares: allRoles},
		{Path: "/v1/tickets/:id", Method: http.MethodPut, Handler: UpdateTicket(service), Middlewares: allRoles},
		{Path: "/v1/tickets/:id", Method: http.MethodDelete, Handler: DeleteTicket(service), Middlewares: adminOrManager},
	}
}

func Tasks(service tasking.Tasking) []router.Route {
	return []router.Route{
		{Path: "/v1/tasks", Method: http.MethodPost, Handler: CreateTask(service), Middlewares: allRoles},
		{Path: "/v1/tasks", Method: http.MethodGet, Handler: ListTasks(service), Middlewares: allRoles},
		{Path: "/v1/tasks/:id", Method: http.MethodGet, Handler: GetTask(service), Middlewares: allRoles},
		{Path: "/v1/tasks/:id", Method: http.MethodPut, Handler: UpdateTask(service), Middlewares: allRoles},
		{Path: "/v1/tasks/:id", Method: http.MethodDelete, Handler: DeleteTask(service), Middlewares: allRoles},
	}
}

func Sales(service selling.Selling) []router.Route {
	return []router.Route{
		{Path: "/v1/sales", Method: http.MethodPost, Handler: CreateSale(service), Middlewares: adminOrManager},
		{Path: "/v1/sales", Method: http.MethodGet, Handler: ListSales(service), Middlewares: adminOrManager},
		{Path: "/v1/sales/:id", Method: http.MethodGet, Handler: GetSale(service), Middlewares: adminOrManager},
		{Path: "/v1/sales/:id", Method: http.MethodDelete, Handler: DeleteSale(service), Middlewares: adminOnly},
		{Path: "/v1/installments/:id/status", Method: http.MethodPut, Handler: UpdateInstallmentStatus(service), Middlewares: adminOrManager},
		{Path: "/v1/commissions", Method: http.MethodGet, Handler: ListCommissions(service), Middlewares: allRoles},
		{Path: "/v1/commissions/summary", Method: http.MethodGet, Handler: CommissionSummary(service), Middlewares: allRoles},
	}
}

// Integrations inclui os webhooks, autenticados pelo token do gateway em vez do JWT
func Integrations(service reconciling.Reconciler) []router.Route {
	return []router.Route{
		{Path: "/v1/integrations", Method: http.MethodPost, Handler: CreateIntegration(service), Middlewares: adminOnly},
		{Path: "/v1/integrations", Method: http.MethodGet, Handler: ListIntegrations(service), Middlewares: adminOnly},
		{Path: "/v1/integrations/:id", Method: http.MethodGet, Handler: GetIntegration(service), Middlewares: adminOnly},
		{Path: "/v1/integrations/:id", Method: http.MethodPut, Handler: UpdateIntegration(service), Middlewares: adminOnly},
		{Path: "/v1/integrations/:id", Method: http.MethodDelete, Handler: DeleteIntegration(service), Middlewares: adminOnly},
		{Path: "/v1/webhooks/asaas", Method: http.MethodPost, Handler: AsaasWebhook(service)},
		{Path: "/v1/webhooks/hotmart", Method: http.MethodPost, Handler: HotmartWebhook(service)},
	}
}

func OKRs(service okrtracking.OKRTracker) []router.Route {
	return []router.Route{
		{Path: "/v1/okrs/cycles", Method: http.MethodPost, Handler: CreateCycle(service), Middlewares: adminOrManager},
		{Path: "/v1/okrs/cycles", Method: http.MethodGet, Handler: ListCycles(service), Middlewares: allRoles},
		{Path: "/v1/okrs/cycles/:id/tree", Method: http.MethodGet, Handler: GetCycleTree(service), Middlewares: allRoles},
		{Path: "/v1/okrs/cycles/:id", Method: http.MethodPut, Handler: UpdateCycle(service), Middlewares: adminOrManager},
		{Path: "/v1/okrs/cycles/:id", Method: http.MethodDelete, Handler: DeleteCycle(service), Middlewares: adminOrManager},
		{Path: "/v1/okrs/objectives", Method: http.MethodPost, Handler: CreateObjective(service), Middlewares: adminOrManager},
		{Path: "/v1/okrs/objectives/:id", Method: http.MethodPut, Handler: UpdateObjective(service), Middlewares: adminOrManager},
		{Path: "/v1/okrs/objectives/:id", Method: http.MethodDelete, Handler: DeleteObjective(service), Middlewares: adminOrManager},
		{Path: "/v1/okrs/key-results", Method: http.MethodPost, Handler: CreateKeyResult(service), Middlewares: adminOrManager},
		{Path: "/v1/okrs/key-results/:id", Method: http.MethodPut, Handler: UpdateKeyResult(service), Middlewares: adminOrManager},
		{Path: "/v1/okrs/key-results/:id", Method: http.MethodDelete, Handler: DeleteKeyResult(service), Middlewares: adminOrManager},
		{Path: "/v1/okrs/key-results/:id/check-in", Method: http.MethodPost, Handler: CheckInKeyResult(service), Middlewares: allRoles},
	}
}

func Mentorias(service mentoring.Mentoring) []router.Route {
	return []router.Route{
		{Path: "/v1/mentorias/processos", Method: http.MethodPost, Handler: CreateProcesso(service), Middlewares: adminOrManager},
		{Path: "/v1/mentorias/processos", Method: http.MethodGet, Handler: ListProcessos(service), Middlewares: allRoles},
		{Path: "/v1/mentorias/processos/:id/board", Method: http.MethodGet, Handler: GetBoard(service), Middlewares: allRoles},
		{Path: "/v1/mentorias/processos/:id", Method: http.MethodPut, Handler: UpdateProcesso(service), Middlewares: adminOrManager},
		{Path: "/v1/mentorias/processos/:id", Method: http.MethodDelete, Handler: DeleteProcesso(service), Middlewares: adminOrManager},
		{Path: "/v1/mentorias/etapas", Method: http.MethodPost, Handler: CreateEtapa(service), Middlewares: adminOrManager},
		{Path: "/v1/mentorias/etapas/:id", Method: http.MethodPut, Handler: UpdateEtapa(service), Middlewares: adminOrManager},
		{Path: "/v1/mentorias/etapas/:id", Method: http.MethodDelete, Handler: DeleteEtapa(service), Middlewares: adminOrManager},
		{Path: "/v1/mentorias/tarefas", Method: http.MethodPost, Handler: CreateTarefa(service), Middlewares: allRoles},
		{Path: "/v1/mentorias/tarefas/:id", Method: http.MethodPut, Handler: UpdateTarefa(service), Middlewares: allRoles},
		{Path: "/v1/mentorias/tarefas/:id", Method: http.MethodDelete, Handler: DeleteTarefa(service), Middlewares: allRoles},
		{Path: "/v1/mentorias/tarefas/:id/move", Method: http.MethodPost, Handler: MoveTarefa(service), Middlewares: allRoles},
	}
}

func Content(service publishing.Publishing) []router.Route {
	return []router.Route{
		{Path: "/v1/content", Method: http.MethodPost, Handler: CreatePost(service), Middlewares: allRoles},
		{Path: "/v1/content", Method: http.MethodGet, Handler: ListPosts(service), Middlewares: allRoles},
		{Path: "/v1/content/:id", Method: http.MethodGet, Handler: GetPost(service), Middlewares: allRoles},
		{Path: "/v1/content/:id", Method: http.MethodPut, Handler: UpdatePost(service), Middlewares: allRoles},
		{Path: "/v1/content/:id", Method: http.MethodDelete, Handler: DeletePost(service), Middlewares: adminOrManager},
	}
}

func Events(service agenda.Agenda) []router.Route {
	return []router.Route{
		{Path: "/v1/events", Method: http.MethodPost, Handler: CreateEvent(service), Middlewares: allRoles},
		{Path: "/v1/events", Method: http.MethodGet, Handler: ListEvents(service), Middlewares: allRoles},
		{Path: "/v1/events/:id", Method: http.MethodGet, Handler: GetEvent(service), Middlewares: allRoles},
		{Path: "/v1/events/:id", Method: http.MethodPut, Handler: UpdateEvent(service), Middlewares: allRoles},
		{Path: "/v1/events/:id", Method: http.MethodDelete, Handler: DeleteEvent(service), Middlewares: adminOrManager},
	}
}

func PDIs(service developing.Developing) []router.Route {
	return []router.Route{
		{Path: "/v1/pdis", Method: http.MethodPost, Handler: CreatePDI(service), Middlewares: adminOrManager},
		{Path: "/v1/pdis", Method: http.MethodGet, Handler: ListPDIs(service), Middlewares: allRoles},
		{Path: "/v1/pdis/:id", Method: http.MethodGet, Handler: GetPDI(service), Middlewares: allRoles},
		{Path: "/v1/pdis/:id", Method: http.MethodPut, Handler: UpdatePDI(service), Middlewares: adminOrManager},
		{Path: "/v1/pdis/:id", Method: http.MethodDelete, Handler: DeletePDI(service), Middlewares: adminOrManager},
		{Path: "/v1/pdis/:id/aulas", Method: http.MethodPost, Handler: AddAula(service), Middlewares: adminOrManager},
		{Path: "/v1/pdis/:id/acessos", Method: http.MethodPost, Handler: AddAcesso(service), Middlewares: adminOrManager},
		{Path: "/v1/pdi-aulas/:id/complete", Method: http.MethodPut, Handler: CompleteAula(service), Middlewares: allRoles},
		{Path: "/v1/pdi-aulas/:id", Method: http.MethodDelete, Handler: DeleteAula(service), Middlewares: adminOrManager},
		{Path: "/v1/pdi-acessos/:id/reveal", Method: http.MethodGet, Handler: RevealAcesso(service), Middlewares: allRoles},
		{Path: "/v1/pdi-acessos/:id", Method: http.MethodDelete, Handler: DeleteAcesso(service), Middlewares: adminOrManager},
	}
}

func Sponsorships(service sponsoring.Sponsoring) []router.Route {
	return []router.Route{
		{Path: "/v1/sponsorships", Method: http.MethodPost, Handler: CreateSponsorship(service), Middlewares: adminOrManager},
		{Path: "/v1/sponsorships", Method: http.MethodGet, Handler: ListSponsorships(service), Middlewares: adminOrManager},
		{Path: "/v1/sponsorships/:id", Method: http.MethodGet, Handler: GetSponsorship(service), Middlewares: adminOrManager},
		{Path: "/v1/sponsorships/:id", Method: http.MethodPut, Handler: UpdateSponsorship(service), Middlewares: adminOrManager},
		{Path: "/v1/sponsorships/:id", Method: http.MethodDelete, Handler: DeleteSponsorship(service), Middlewares: adminOrManager},
		{Path: "/v1/sponsorship-pipeline", Method: http.MethodGet, Handler: SponsorshipPipeline(service), Middlewares: adminOrManager},
	}
}

func Attachments(service attaching.Attaching) []router.Route {
	return []router.Route{
		{Path: "/v1/attachments", Method: http.MethodPost, Handler: RequestUpload(service), Middlewares: allRoles},
		{Path: "/v1/attachments", Method: http.MethodGet, Handler: ListAttachments(service), Middlewares: allRoles},
		{Path: "/v1/attachments/:id/download", Method: http.MethodGet, Handler: DownloadAttachment(service), Middlewares: allRoles},
		{Path: "/v1/attachments/:id", Method: http.MethodDelete, Handler: DeleteAttachment(service), Middlewares: allRoles},
	}
}

func Reports(service reporting.Reporter) []router.Route {
	return []router.Route{
		{Path: "/v1/reports", Method: http.MethodPost, Handler: GenerateReport(service), Middlewares: adminOrManager},
		{Path: "/v1/reports", Method: http.MethodGet, Handler: ListReports(service), Middlewares: adminOrManager},
		{Path: "/v1/reports/:id", Method: http.MethodGet, Handler: GetReport(service), Middlewares: adminOrManager},
		{Path: "/v1/reports/:id", Method: http.MethodDelete, Handler: DeleteReport(service), Middlewares: adminOrManager},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: adminOnly,
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: adminOrManager,
		},
	}
}

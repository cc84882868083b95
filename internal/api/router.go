package api

import (
	"net/http"

	"github.com/gorilla/mux"

	addMaterialHandler "github.com/m04kA/SMC-BannerCaseService/internal/api/handlers/add_material"
	addProposalSlotHandler "github.com/m04kA/SMC-BannerCaseService/internal/api/handlers/add_proposal_slot"
	caseActionHandler "github.com/m04kA/SMC-BannerCaseService/internal/api/handlers/case_action"
	createCaseHandler "github.com/m04kA/SMC-BannerCaseService/internal/api/handlers/create_case"
	deleteCaseHandler "github.com/m04kA/SMC-BannerCaseService/internal/api/handlers/delete_case"
	getCaseHandler "github.com/m04kA/SMC-BannerCaseService/internal/api/handlers/get_case"
	getSlotCalendarHandler "github.com/m04kA/SMC-BannerCaseService/internal/api/handlers/get_slot_calendar"
	listAnniversaryPacksHandler "github.com/m04kA/SMC-BannerCaseService/internal/api/handlers/list_anniversary_packs"
	listAreaSlotsHandler "github.com/m04kA/SMC-BannerCaseService/internal/api/handlers/list_area_slots"
	listCasesHandler "github.com/m04kA/SMC-BannerCaseService/internal/api/handlers/list_cases"
	removeMaterialHandler "github.com/m04kA/SMC-BannerCaseService/internal/api/handlers/remove_material"
	removeProposalSlotHandler "github.com/m04kA/SMC-BannerCaseService/internal/api/handlers/remove_proposal_slot"
	updateCaseHandler "github.com/m04kA/SMC-BannerCaseService/internal/api/handlers/update_case"
	uploadDocumentHandler "github.com/m04kA/SMC-BannerCaseService/internal/api/handlers/upload_application_document"
	useAnniversaryPackHandler "github.com/m04kA/SMC-BannerCaseService/internal/api/handlers/use_anniversary_pack"
	"github.com/m04kA/SMC-BannerCaseService/internal/api/middleware"
	casesService "github.com/m04kA/SMC-BannerCaseService/internal/service/cases"
	catalogService "github.com/m04kA/SMC-BannerCaseService/internal/service/catalog"
	workflowService "github.com/m04kA/SMC-BannerCaseService/internal/service/workflow"
	addMaterialUC "github.com/m04kA/SMC-BannerCaseService/internal/usecase/add_material"
	addProposalSlotUC "github.com/m04kA/SMC-BannerCaseService/internal/usecase/add_proposal_slot"
	createCaseUC "github.com/m04kA/SMC-BannerCaseService/internal/usecase/create_case"
	getSlotCalendarUC "github.com/m04kA/SMC-BannerCaseService/internal/usecase/get_slot_calendar"
	"github.com/m04kA/SMC-BannerCaseService/pkg/metrics"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Dependencies сервисы и use cases, которые обслуживает роутер
type Dependencies struct {
	CreateCase      *createCaseUC.UseCase
	AddProposalSlot *addProposalSlotUC.UseCase
	AddMaterial     *addMaterialUC.UseCase
	SlotCalendar    *getSlotCalendarUC.UseCase

	Cases    *casesService.Service
	Workflow *workflowService.Service
	Catalog  *catalogService.Service

	Metrics     *metrics.Metrics // nil - метрики выключены
	MetricsPath string
	Logger      Logger
}

// NewRouter собирает HTTP роутер
func NewRouter(deps Dependencies) *mux.Router {
	log := deps.Logger

	// Инициализируем handlers
	createCase := createCaseHandler.NewHandler(deps.CreateCase, log)
	listCases := listCasesHandler.NewHandler(deps.Cases, log)
	getCase := getCaseHandler.NewHandler(deps.Cases, log)
	updateCase := updateCaseHandler.NewHandler(deps.Cases, log)
	deleteCase := deleteCaseHandler.NewHandler(deps.Cases, log)
	addSlot := addProposalSlotHandler.NewHandler(deps.AddProposalSlot, log)
	removeSlot := removeProposalSlotHandler.NewHandler(deps.Cases, log)
	addMaterial := addMaterialHandler.NewHandler(deps.AddMaterial, log)
	removeMaterial := removeMaterialHandler.NewHandler(deps.Cases, log)
	uploadDocument := uploadDocumentHandler.NewHandler(deps.Cases, log)
	useAnniversaryPack := useAnniversaryPackHandler.NewHandler(deps.Cases, log)
	caseAction := caseActionHandler.NewHandler(deps.Workflow, log)
	slotCalendar := getSlotCalendarHandler.NewHandler(deps.SlotCalendar, log)
	listAreaSlots := listAreaSlotsHandler.NewHandler(deps.Catalog, log)
	listAnniversaryPacks := listAnniversaryPacksHandler.NewHandler(deps.Catalog, log)

	r := mux.NewRouter()

	if deps.Metrics != nil {
		r.Use(middleware.MetricsMiddleware(deps.Metrics))
		r.Handle(deps.MetricsPath, deps.Metrics.Handler()).Methods(http.MethodGet)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Кейсы ---
	api.HandleFunc("/cases", createCase.Handle).Methods(http.MethodPost)
	api.HandleFunc("/cases", listCases.Handle).Methods(http.MethodGet)
	api.HandleFunc("/cases/{caseId}", getCase.Handle).Methods(http.MethodGet)
	api.HandleFunc("/cases/{caseId}", updateCase.Handle).Methods(http.MethodPatch)
	api.HandleFunc("/cases/{caseId}", deleteCase.Handle).Methods(http.MethodDelete)

	// --- Шаг 1: предложение ---
	api.HandleFunc("/cases/{caseId}/slots", addSlot.Handle).Methods(http.MethodPost)
	api.HandleFunc("/cases/{caseId}/slots/{slotId}", addSlot.Handle).Methods(http.MethodPut)
	api.HandleFunc("/cases/{caseId}/slots/{slotId}", removeSlot.Handle).Methods(http.MethodDelete)
	api.HandleFunc("/cases/{caseId}/anniversary-pack", useAnniversaryPack.Handle).Methods(http.MethodPut)

	// --- Шаг 2: публикация ---
	api.HandleFunc("/cases/{caseId}/materials", addMaterial.Handle).Methods(http.MethodPost)
	api.HandleFunc("/cases/{caseId}/materials/{materialId}", removeMaterial.Handle).Methods(http.MethodDelete)
	api.HandleFunc("/cases/{caseId}/application-document", uploadDocument.Handle).Methods(http.MethodPut)

	// --- Workflow ---
	api.HandleFunc("/cases/{caseId}/actions/{action}", caseAction.Handle).Methods(http.MethodPost)

	// --- Справочники и календарь ---
	api.HandleFunc("/slot-calendar", slotCalendar.Handle).Methods(http.MethodGet)
	api.HandleFunc("/area-slots", listAreaSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/anniversary-packs", listAnniversaryPacks.Handle).Methods(http.MethodGet)

	return r
}

package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/searchad-collector/internal/scheduler"
	"github.com/vfg2006/searchad-collector/pkg/apiErrors"
)

// Tipos de cron job disparáveis manualmente.
const (
	CronJobTypeCollect  = "collect"
	CronJobTypeBizmoney = "bizmoney"
	CronJobTypeAll      = "all"
)

// CronJobServices contém os agendadores expostos pela API operacional.
type CronJobServices struct {
	CollectSyncService  *scheduler.CollectSyncService
	BizmoneySyncService *scheduler.BizmoneySyncService
}

// RunCronJob dispara manualmente uma cron job específica.
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypeCollect:
			if services.CollectSyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de coleta não disponível", nil)
				return
			}
			services.CollectSyncService.TriggerManualSync()

		case CronJobTypeBizmoney:
			if services.BizmoneySyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de bizmoney não disponível", nil)
				return
			}
			services.BizmoneySyncService.TriggerManualSync()

		case CronJobTypeAll:
			if services.CollectSyncService != nil {
				services.CollectSyncService.TriggerManualSync()
			}
			if services.BizmoneySyncService != nil {
				services.BizmoneySyncService.TriggerManualSync()
			}

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: collect, bizmoney, all", nil)
			return
		}

		response := map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		}
		json.NewEncoder(w).Encode(response)
	}
}

// GetCronStatus retorna o status das cron jobs.
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetCronStatus")

		status := map[string]any{
			"collect":  services.CollectSyncService.GetStatus(),
			"bizmoney": services.BizmoneySyncService.GetStatus(),
		}

		json.NewEncoder(w).Encode(status)
	}
}

package dashboard

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/ziadkadry99/wonderchile/internal/db"
)

// statsResponse is the JSON response for the stats endpoint.
type statsResponse struct {
	Users       int `json:"usuarios"`
	Trips       int `json:"viajes"`
	Promotions  int `json:"promociones"`
	Contacts    int `json:"contactos"`
	CartItems   int `json:"carrito"`
	Subscribers int `json:"suscriptores"`
}

func (d *Dashboard) handleStats(w http.ResponseWriter, r *http.Request) {
	counts := make(map[string]int, len(db.Tables))
	for _, table := range db.Tables {
		n, err := d.db.Count(table)
		if err != nil {
			d.logger.Error("counting rows", zap.String("table", table), zap.Error(err))
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
			return
		}
		counts[table] = n
	}

	writeJSON(w, http.StatusOK, statsResponse{
		Users:       counts["usuarios"],
		Trips:       counts["viajes"],
		Promotions:  counts["promociones"],
		Contacts:    counts["contactos"],
		CartItems:   counts["carrito"],
		Subscribers: d.hub.Subscribers(),
	})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

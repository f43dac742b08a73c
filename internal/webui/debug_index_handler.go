package webui

import (
	"bytes"
	"net/http"

	"github.com/davecgh/go-spew/spew"
	"railbooking.org/internal/fare"
)

type debugData struct {
	Title string
	Pre   string
}

func (webUI *WebUI) writeDebugData(w http.ResponseWriter, title string, data interface{}) {
	dataStruct := debugData{
		Title: title,
		Pre:   spew.Sdump(data),
	}

	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, "debug_index.html", dataStruct); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(buf.Bytes())
}

type trainDump struct {
	ID             int
	Name           string
	Stations       []string
	Prices         []float64
	DiscountWindow fare.DiscountWindow
}

func dumpTrain(t *fare.Train) trainDump {
	d := trainDump{ID: t.ID(), Name: t.Name(), DiscountWindow: t.Window()}
	for i := 0; i < t.StationCount(); i++ {
		d.Stations = append(d.Stations, t.StationName(i))
		d.Prices = append(d.Prices, t.PriceAt(i))
	}
	return d
}

func (webUI *WebUI) debugIndexHandler(w http.ResponseWriter, r *http.Request) {
	dataType := r.URL.Query().Get("dataType")

	var data interface{}
	var title string

	switch dataType {
	case "", "trains":
		trains := webUI.Catalog.Trains()
		dump := make([]trainDump, 0, len(trains))
		for _, t := range trains {
			dump = append(dump, dumpTrain(t))
		}
		data = dump
		title = "Catalog - Trains"
	case "config":
		cfg := webUI.Config
		cfg.ApiKeys = nil
		data = cfg
		title = "Application - Config"
	default:
		data = map[string]string{
			"error": "Please use one of the following: trains, config.",
		}
		title = "Choose a data type"
	}

	webUI.writeDebugData(w, title, data)
}

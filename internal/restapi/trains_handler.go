package restapi

import (
	"net/http"

	"railbooking.org/internal/fare"
	"railbooking.org/internal/models"
	"railbooking.org/internal/utils"
)

func (api *RestAPI) trainsHandler(w http.ResponseWriter, r *http.Request) {
	trains := api.Catalog.Trains()

	entries := make([]models.TrainEntry, 0, len(trains))
	for _, train := range trains {
		entries = append(entries, newTrainEntry(train))
	}

	api.sendResponse(w, r, models.NewListResponse(entries))
}

func (api *RestAPI) trainHandler(w http.ResponseWriter, r *http.Request) {
	choice, err := utils.TrainIDFromPath(r, "id")
	if err != nil {
		api.sendError(w, r, models.NewErrorResponse(http.StatusBadRequest, err.Error(),
			map[string][]string{"id": {err.Error()}}))
		return
	}

	train, ok := api.Catalog.Train(choice)
	if !ok {
		api.sendNotFound(w, r)
		return
	}

	api.sendResponse(w, r, models.NewEntryResponse(newTrainEntry(train)))
}

func newTrainEntry(train *fare.Train) models.TrainEntry {
	stations := make([]models.StationEntry, 0, train.StationCount())
	for i := 0; i < train.StationCount(); i++ {
		stations = append(stations, models.StationEntry{
			Index:     i + 1,
			Name:      train.StationName(i),
			BasePrice: train.PriceAt(i),
		})
	}

	window := train.Window()
	return models.NewTrainEntry(train.ID(), train.Name(), fare.Currency, stations, window.Start, window.End)
}

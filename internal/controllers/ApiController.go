package controllers

import (
	"errors"
	"io"
	"net/http"
	"sort"
	"strconv"
	"time"

	json "github.com/goccy/go-json"
	"github.com/spf13/cast"

	"bevlog/internal/i18n"
	"bevlog/internal/providers"
	"bevlog/internal/services"
	"bevlog/internal/statistic"
)

const maxRequestBodySize = 1 << 20 // 1 MB

type ApiController struct {
	logger  providers.Logger
	service services.TrackerServiceInterface
	cache   providers.CacheProviderInterface
	bundle  *i18n.Bundle
}

func NewApiController(logger providers.Logger, service services.TrackerServiceInterface, cache providers.CacheProviderInterface, bundle *i18n.Bundle) *ApiController {
	return &ApiController{
		logger:  logger,
		service: service,
		cache:   cache,
		bundle:  bundle,
	}
}

func (ac *ApiController) serveFromCacheOrCompute(w http.ResponseWriter, cacheKey string, compute func() (any, error)) {
	if data, ok := ac.cache.Get(cacheKey); ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
		return
	}

	result, err := compute()
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	gson, err := json.Marshal(result)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	ac.cache.Set(cacheKey, gson)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(gson)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	gson, err := json.Marshal(v)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(gson)
}

// --- beverages ---

func (ac *ApiController) GetBeverages(w http.ResponseWriter, r *http.Request) {
	ac.serveFromCacheOrCompute(w, "beverages", func() (any, error) {
		return ac.service.GetBeverages(), nil
	})
}

type addBeveragePayload struct {
	Name  string `json:"name"`
	Emoji string `json:"emoji"`
	Color string `json:"color"`
}

func (ac *ApiController) AddBeverage(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	var payload addBeveragePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.Name == "" {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	beverage, err := ac.service.AddBeverage(payload.Name, payload.Emoji, payload.Color)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	ac.cache.Purge()
	writeJSON(w, http.StatusCreated, beverage)
}

// RemoveBeverage rejects the built-in catalog ids. The store itself has
// no such guard; this is the caller-side check the storage contract
// expects.
func (ac *ApiController) RemoveBeverage(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	if isReserved(id) {
		http.Error(w, ac.bundle.Lang(r.URL.Query().Get("lang"))["cannotDelete"], http.StatusConflict)
		return
	}

	if err := ac.service.RemoveBeverage(id); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	ac.cache.Purge()
	w.WriteHeader(http.StatusNoContent)
}

func isReserved(id string) bool {
	for i := 1; i <= 6; i++ {
		if id == strconv.Itoa(i) {
			return true
		}
	}
	return false
}

// --- logs ---

func (ac *ApiController) GetLogs(w http.ResponseWriter, r *http.Request) {
	ac.serveFromCacheOrCompute(w, "logs", func() (any, error) {
		return ac.service.GetLogs(), nil
	})
}

func (ac *ApiController) GetLogsForBeverage(w http.ResponseWriter, r *http.Request) {
	label := r.URL.Query().Get("label")
	ac.serveFromCacheOrCompute(w, "logs:"+label, func() (any, error) {
		return ac.service.GetLogsForBeverage(label), nil
	})
}

type addLogPayload struct {
	Beverage  string `json:"beverage"`
	Variant   string `json:"variant"`
	Timestamp int64  `json:"timestamp"`
}

// AddLog records one consumption event. A variant suffixes the label as
// "<name> - <variant>". When no timestamp is given, now is used and the
// early-morning adjustment applies; explicit timestamps are taken as-is.
func (ac *ApiController) AddLog(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	var payload addLogPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.Beverage == "" {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	label := payload.Beverage
	if payload.Variant != "" {
		label = payload.Beverage + " - " + payload.Variant
	}

	var at time.Time
	if payload.Timestamp > 0 {
		at = time.UnixMilli(payload.Timestamp)
	} else {
		at = ac.service.AdjustTimestamp(time.Now())
	}

	entry, err := ac.service.AddLog(label, at)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	ac.cache.Purge()
	writeJSON(w, http.StatusCreated, entry)
}

func (ac *ApiController) RemoveLog(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	if err := ac.service.RemoveLog(id); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	ac.cache.Purge()
	w.WriteHeader(http.StatusNoContent)
}

func (ac *ApiController) ClearLogs(w http.ResponseWriter, r *http.Request) {
	if err := ac.service.ClearLogs(); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	ac.cache.Purge()
	w.WriteHeader(http.StatusNoContent)
}

// --- statistics ---

type labelCount struct {
	Beverage string `json:"beverage"`
	Count    int    `json:"count"`
}

type statsResponse struct {
	Period string       `json:"period"`
	Offset int          `json:"offset"`
	Counts []labelCount `json:"counts"`
	statistic.Summary
}

func (ac *ApiController) GetStats(w http.ResponseWriter, r *http.Request) {
	periodParam := r.URL.Query().Get("period")
	if periodParam == "" {
		periodParam = string(statistic.PeriodDay)
	}
	period, err := statistic.ParsePeriod(periodParam)
	if err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	offset := cast.ToInt(r.URL.Query().Get("offset"))
	if period != statistic.PeriodMonth {
		offset = 0
	}

	cacheKey := "stats:" + string(period) + ":" + strconv.Itoa(offset)
	ac.serveFromCacheOrCompute(w, cacheKey, func() (any, error) {
		counts := statistic.CountForPeriod(ac.service.GetLogs(), period, offset, time.Now())

		sorted := make([]labelCount, 0, len(counts))
		for beverage, count := range counts {
			sorted = append(sorted, labelCount{Beverage: beverage, Count: count})
		}
		sort.Slice(sorted, func(i, j int) bool {
			if sorted[i].Count != sorted[j].Count {
				return sorted[i].Count > sorted[j].Count
			}
			return sorted[i].Beverage < sorted[j].Beverage
		})

		return statsResponse{
			Period:  string(period),
			Offset:  offset,
			Counts:  sorted,
			Summary: statistic.Summarize(counts),
		}, nil
	})
}

// --- export / import ---

func (ac *ApiController) ExportData(w http.ResponseWriter, r *http.Request) {
	payload, err := ac.service.Export()
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(payload))
}

func (ac *ApiController) ImportData(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	payload, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	if err := ac.service.Import(string(payload)); err != nil {
		if errors.Is(err, services.ErrBadPayload) {
			http.Error(w, "Bad Request", http.StatusBadRequest)
			return
		}
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	ac.cache.Purge()
	w.WriteHeader(http.StatusNoContent)
}

func (ac *ApiController) ExportCSV(w http.ResponseWriter, r *http.Request) {
	withLiters := cast.ToBool(r.URL.Query().Get("liters"))
	logs := ac.service.GetLogs()

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", "attachment; filename="+statistic.ExportFileName(time.Now()))
	w.WriteHeader(http.StatusOK)

	if err := statistic.WriteCSV(w, logs, withLiters); err != nil {
		ac.logger.Errorf(providers.TypeGet, "Error streaming CSV export: %s", err)
	}
}

// --- i18n ---

func (ac *ApiController) GetStrings(w http.ResponseWriter, r *http.Request) {
	lang := r.URL.Query().Get("lang")
	ac.serveFromCacheOrCompute(w, "i18n:"+lang, func() (any, error) {
		return ac.bundle.Lang(lang), nil
	})
}

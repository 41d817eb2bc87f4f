package handler

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/ads-dashboard-api/pkg/utils"
)

// queryInt lê um inteiro opcional da query; ausente vale 0
func queryInt(r *http.Request, key string) (int, error) {
	value := strings.TrimSpace(r.URL.Query().Get(key))
	if value == "" {
		return 0, nil
	}

	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, errors.Wrapf(err, "parâmetro %s inválido", key)
	}

	return n, nil
}

// queryDate lê uma data opcional. Com endOfDay, uma data sem horário cobre o dia inteiro.
func queryDate(r *http.Request, key string, loc *time.Location, endOfDay bool) (*time.Time, error) {
	value := strings.TrimSpace(r.URL.Query().Get(key))
	if value == "" {
		return nil, nil
	}

	t, dateOnly, err := utils.ParseDate(value, loc)
	if err != nil {
		return nil, errors.Wrapf(err, "parâmetro %s inválido", key)
	}

	if dateOnly && endOfDay {
		t = utils.EndOfDay(t, loc)
	}

	return &t, nil
}

// queryList separa valores por vírgula, ignorando vazios
func queryList(r *http.Request, key string) []string {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return nil
	}

	values := make([]string, 0)
	for _, v := range strings.Split(raw, ",") {
		if v = strings.TrimSpace(v); v != "" {
			values = append(values, v)
		}
	}

	return values
}

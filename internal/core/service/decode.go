package service

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/labreserve/switch-console/internal/core/apierror"
	"github.com/labreserve/switch-console/internal/core/domain"
	"github.com/labreserve/switch-console/internal/core/endpoint"
	"github.com/labreserve/switch-console/internal/core/ports"
)

// decodeResult turns a raw envelope into a typed one. A success whose body
// does not decode is reported as a failure with the operation's fallback.
func decodeResult[T any](raw domain.Result[json.RawMessage], context string) domain.Result[T] {
	if !raw.Success {
		return domain.Recast[json.RawMessage, T](raw)
	}
	var out T
	if err := json.Unmarshal(raw.Data, &out); err != nil {
		return domain.Fail[T](apierror.Fallback(context), http.StatusInternalServerError)
	}
	return domain.OK(out, raw.Status)
}

// decodeList accepts either a bare JSON array or an object holding the array
// under one of keys. The backend uses both shapes.
func decodeList[T any](raw domain.Result[json.RawMessage], context string, keys ...string) domain.Result[[]T] {
	if !raw.Success {
		return domain.Recast[json.RawMessage, []T](raw)
	}
	items, err := unwrapList[T](raw.Data, keys...)
	if err != nil {
		return domain.Fail[[]T](apierror.Fallback(context), http.StatusInternalServerError)
	}
	return domain.OK(items, raw.Status)
}

func unwrapList[T any](data json.RawMessage, keys ...string) ([]T, error) {
	var items []T
	if err := json.Unmarshal(data, &items); err == nil {
		if items == nil {
			items = []T{}
		}
		return items, nil
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(data, &obj); err != nil {
		return nil, err
	}
	for _, k := range keys {
		inner, ok := obj[k]
		if !ok {
			continue
		}
		if err := json.Unmarshal(inner, &items); err != nil {
			return nil, fmt.Errorf("decode %q: %w", k, err)
		}
		if items == nil {
			items = []T{}
		}
		return items, nil
	}
	return nil, fmt.Errorf("no list under %v", keys)
}

// detailOf returns the backend's "detail" confirmation, if any.
func detailOf(raw domain.Result[json.RawMessage]) domain.Result[string] {
	if !raw.Success {
		return domain.Recast[json.RawMessage, string](raw)
	}
	var body struct {
		Detail string `json:"detail"`
	}
	_ = json.Unmarshal(raw.Data, &body)
	return domain.OK(body.Detail, raw.Status)
}

func request(name endpoint.Name, op string, body any) ports.BackendRequest {
	spec, _ := endpoint.Lookup(name)
	return ports.BackendRequest{
		Operation: name,
		Method:    spec.Method,
		Path:      spec.Path,
		Body:      body,
		Context:   op,
	}
}

// requestWithID targets the id-suffixed form of an endpoint, e.g. list_port/3/.
func requestWithID(name endpoint.Name, id int, op string) ports.BackendRequest {
	req := request(name, op, nil)
	req.Path = endpoint.PathWithID(name, id)
	return req
}

package freshbooks

import (
	"context"
	"encoding/json"
	"net/url"
	"sort"
	"strconv"

	"github.com/pkg/errors"
)

// ListOptions are the common list query parameters
type ListOptions struct {
	Page    int
	PerPage int
	// Search is sent as the plain "search" parameter
	Search string
	// Filters are sent as search[key]=value
	Filters map[string]string
}

func (o *ListOptions) query() url.Values {
	q := url.Values{}
	if o == nil {
		return q
	}
	if o.Page > 0 {
		q.Set("page", strconv.Itoa(o.Page))
	}
	if o.PerPage > 0 {
		q.Set("per_page", strconv.Itoa(o.PerPage))
	}
	if o.Search != "" {
		q.Set("search", o.Search)
	}

	keys := make([]string, 0, len(o.Filters))
	for k := range o.Filters {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		q.Set("search["+k+"]", o.Filters[k])
	}
	return q
}

// withPage returns a copy of o requesting the given page
func (o *ListOptions) withPage(page int) *ListOptions {
	next := ListOptions{}
	if o != nil {
		next = *o
	}
	next.Page = page
	return &next
}

// Page is one page of a list response
type Page[T any] struct {
	Items   []*T `json:"items"`
	Page    int  `json:"page"`
	Pages   int  `json:"pages"`
	PerPage int  `json:"per_page"`
	Total   int  `json:"total"`
}

type pageMeta struct {
	Page    int `json:"page"`
	Pages   int `json:"pages"`
	PerPage int `json:"per_page"`
	Total   int `json:"total"`
}

// container returns the members of the accounting "result" object when
// present, otherwise the members of the body itself.
func container(raw json.RawMessage) (map[string]json.RawMessage, error) {
	if len(raw) == 0 {
		return map[string]json.RawMessage{}, nil
	}

	var root map[string]json.RawMessage
	if err := json.Unmarshal(raw, &root); err != nil {
		return nil, errors.Wrap(err, "failed to decode response")
	}

	if result, ok := root["result"]; ok && !isNull(result) {
		var inner map[string]json.RawMessage
		if err := json.Unmarshal(result, &inner); err == nil {
			return inner, nil
		}
	}
	return root, nil
}

// decodePage reads items under key along with the paging counters. Accounting
// endpoints put counters next to the items; project endpoints nest them in "meta".
func decodePage[T any](raw json.RawMessage, key string) (*Page[T], error) {
	members, err := container(raw)
	if err != nil {
		return nil, err
	}

	page := &Page[T]{Items: []*T{}}
	if items, ok := members[key]; ok && !isNull(items) {
		if err := json.Unmarshal(items, &page.Items); err != nil {
			return nil, errors.Wrapf(err, "failed to decode %s", key)
		}
	}

	meta := pageMeta{}
	if m, ok := members["meta"]; ok && !isNull(m) {
		if err := json.Unmarshal(m, &meta); err != nil {
			return nil, errors.Wrap(err, "failed to decode paging metadata")
		}
	} else {
		for field, dst := range map[string]*int{"page": &meta.Page, "pages": &meta.Pages, "per_page": &meta.PerPage, "total": &meta.Total} {
			if v, ok := members[field]; ok && !isNull(v) {
				if err := json.Unmarshal(v, dst); err != nil {
					return nil, errors.Wrapf(err, "failed to decode %s", field)
				}
			}
		}
	}

	page.Page = meta.Page
	page.Pages = meta.Pages
	page.PerPage = meta.PerPage
	page.Total = meta.Total
	return page, nil
}

// decodeList reads an unpaginated collection under key
func decodeList[T any](raw json.RawMessage, key string) ([]*T, error) {
	page, err := decodePage[T](raw, key)
	if err != nil {
		return nil, err
	}
	return page.Items, nil
}

// decodeOne reads a single resource under the first key that is present
func decodeOne[T any](raw json.RawMessage, keys ...string) (*T, error) {
	members, err := container(raw)
	if err != nil {
		return nil, err
	}

	for _, key := range keys {
		value, ok := members[key]
		if !ok || isNull(value) {
			continue
		}
		out := new(T)
		if err := json.Unmarshal(value, out); err != nil {
			return nil, errors.Wrapf(err, "failed to decode %s", key)
		}
		return out, nil
	}

	return nil, errors.Errorf("response did not contain %v", keys)
}

// paginate requests pages 1, 2, ... in order and stops once the reported
// page count has been reached.
func paginate[T any](ctx context.Context, fetch func(ctx context.Context, page int) (*Page[T], error)) ([]*T, error) {
	all := []*T{}
	for page := 1; ; page++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		p, err := fetch(ctx, page)
		if err != nil {
			return nil, err
		}
		all = append(all, p.Items...)

		if page >= p.Pages {
			return all, nil
		}
	}
}

func isNull(raw json.RawMessage) bool {
	return len(raw) == 0 || string(raw) == "null"
}

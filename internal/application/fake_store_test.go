package application

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/bnema/quotevault-cli/internal/domain"
	"github.com/bnema/quotevault-cli/internal/ports"
)

type storeCall struct {
	method string
	path   string
	value  any
}

// fakeStore is an in-memory ports.RemoteStore that serves canned subtrees
// and records every write in order.
type fakeStore struct {
	data      map[string]any
	fetchErr  map[string]error
	createIDs []string
	createErr error
	setErr    error
	deleteErr error
	calls     []storeCall
}

var _ ports.RemoteStore = (*fakeStore)(nil)

func newFakeStore() *fakeStore {
	return &fakeStore{
		data:     map[string]any{},
		fetchErr: map[string]error{},
	}
}

func (s *fakeStore) Fetch(_ context.Context, path string, out any) error {
	s.calls = append(s.calls, storeCall{method: "GET", path: path})

	if err := s.fetchErr[path]; err != nil {
		return err
	}

	value, ok := s.data[path]
	if !ok {
		return fmt.Errorf("fetch %s: %w", path, domain.ErrPathNotFound)
	}

	encoded, err := json.Marshal(value)
	if err != nil {
		return err
	}

	return json.Unmarshal(encoded, out)
}

func (s *fakeStore) Create(_ context.Context, path string, payload any) (string, error) {
	s.calls = append(s.calls, storeCall{method: "POST", path: path, value: payload})

	if s.createErr != nil {
		return "", s.createErr
	}
	if len(s.createIDs) == 0 {
		return "", fmt.Errorf("create %s: no id configured", path)
	}

	id := s.createIDs[0]
	s.createIDs = s.createIDs[1:]
	return id, nil
}

func (s *fakeStore) Set(_ context.Context, path string, value any) error {
	s.calls = append(s.calls, storeCall{method: "PUT", path: path, value: value})
	return s.setErr
}

func (s *fakeStore) Delete(_ context.Context, path string) error {
	s.calls = append(s.calls, storeCall{method: "DELETE", path: path})
	return s.deleteErr
}

func (s *fakeStore) writes() []storeCall {
	var writes []storeCall
	for _, call := range s.calls {
		if call.method != "GET" {
			writes = append(writes, call)
		}
	}
	return writes
}

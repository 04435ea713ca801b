// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

// recordingWorker appends its name to a shared journal and remembers the
// context it was started with.
type recordingWorker struct {
	name    string
	journal *[]string
	ctx     context.Context
}

func (r *recordingWorker) Run(ctx context.Context) {
	*r.journal = append(*r.journal, r.name)
	r.ctx = ctx
}

func TestWorkers_Run(t *testing.T) {
	type ctxKey struct{}
	ctx := context.WithValue(context.Background(), ctxKey{}, "devserver")

	var journal []string
	watcher := &recordingWorker{name: "watcher", journal: &journal}
	janitor := &recordingWorker{name: "janitor", journal: &journal}

	NewWorkers(watcher, janitor).Run(ctx)

	assert.Equal(t, []string{"watcher", "janitor"}, journal)
	assert.Equal(t, ctx, watcher.ctx)
	assert.Equal(t, ctx, janitor.ctx)
}

func TestWorkers_RunTwice(t *testing.T) {
	var journal []string
	w := &recordingWorker{name: "watcher", journal: &journal}
	ws := NewWorkers(w)

	ws.Run(context.Background())
	ws.Run(context.Background())

	assert.Equal(t, []string{"watcher", "watcher"}, journal)
}

func TestWorkers_RunWithoutWorkers(t *testing.T) {
	assert.NotPanics(t, func() { NewWorkers().Run(context.Background()) })
	assert.NotPanics(t, func() { (&Workers{}).Run(context.Background()) })
}

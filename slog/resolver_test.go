package slog_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/fwojciec/pagemeta"
	"github.com/fwojciec/pagemeta/mock"
	pmslog "github.com/fwojciec/pagemeta/slog"
	"github.com/stretchr/testify/assert"
)

func TestLoggingResolver_Resolve(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	inner := &mock.FieldResolver{
		ResolveFn: func(pagemeta.Document) pagemeta.Fields {
			return pagemeta.Fields{Title: "Breaking News", Author: "Maria Lopez"}
		},
	}

	fields := pmslog.NewLoggingResolver(inner, logger).Resolve(&mock.Document{})

	assert.Equal(t, pagemeta.Fields{Title: "Breaking News", Author: "Maria Lopez"}, fields)
	output := buf.String()
	assert.Contains(t, output, "msg=resolve")
	assert.Contains(t, output, "title=\"Breaking News\"")
	assert.Contains(t, output, "author=\"Maria Lopez\"")
}

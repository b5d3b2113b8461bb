// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponseWriter_RecordsStatusAndSize(t *testing.T) {
	rr := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rr}

	w.WriteHeader(http.StatusTeapot)
	n, err := w.Write([]byte("short and stout"))
	require.NoError(t, err)

	assert.Equal(t, http.StatusTeapot, w.status)
	assert.Equal(t, n, w.size)
	assert.Equal(t, http.StatusTeapot, rr.Code)
}

func TestResponseWriter_ImplicitOKOnWrite(t *testing.T) {
	rr := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rr}

	_, err := w.Write([]byte("body"))
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, w.status)
	assert.True(t, w.wroteHeader)
}

func TestResponseWriter_SecondWriteHeaderIgnored(t *testing.T) {
	rr := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rr}

	w.WriteHeader(http.StatusBadRequest)
	w.WriteHeader(http.StatusOK)

	assert.Equal(t, http.StatusBadRequest, w.status)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestResponseWriter_SizeAccumulatesAcrossWrites(t *testing.T) {
	rr := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rr}

	_, err := w.Write([]byte("first"))
	require.NoError(t, err)
	_, err = w.Write([]byte("second"))
	require.NoError(t, err)

	assert.Equal(t, len("first")+len("second"), w.size)
}

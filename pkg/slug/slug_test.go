// Copyright (c) 2026 ASU Club. All rights reserved.
// Author: webteam@asuclub.org

package slug_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/asuclub/asu-api/pkg/slug"
)

/*
TestSlug_From covers the slug pipeline against the event titles we actually see.
*/
func TestSlug_From(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"simple_title", "Cultural Night", "cultural-night"},
		{"accents", "Tết Festival Kickoff", "tet-festival-kickoff"},
		{"punctuation", "Boba & Board Games!!", "boba-board-games"},
		{"extra_whitespace", "  Spring   GBM  ", "spring-gbm"},
		{"numbers", "Week 3 Study Jam", "week-3-study-jam"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, slug.From(tt.input))
		})
	}
}

// Copyright (c) 2026 ASU Club. All rights reserved.
// Author: webteam@asuclub.org

package sec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/asuclub/asu-api/internal/platform/sec"
)

/*
TestParseRole verifies the closed role vocabulary: only the four known
roles parse, everything else is rejected.
*/
func TestParseRole(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  sec.Role
		ok    bool
	}{
		{"owner", "owner", sec.RoleOwner, true},
		{"admin", "admin", sec.RoleAdmin, true},
		{"editor", "editor", sec.RoleEditor, true},
		{"viewer", "viewer", sec.RoleViewer, true},
		{"uppercase", "Admin", sec.RoleAdmin, true},
		{"padded", "  viewer ", sec.RoleViewer, true},
		{"unknown", "superadmin", "", false},
		{"empty", "", "", false},
		{"legacy_member", "member", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := sec.ParseRole(tt.input)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

/*
TestRole_AtLeast checks the privilege ordering owner > admin > editor > viewer.
*/
func TestRole_AtLeast(t *testing.T) {
	ordered := []sec.Role{sec.RoleViewer, sec.RoleEditor, sec.RoleAdmin, sec.RoleOwner}

	for i, lower := range ordered {
		for j, higher := range ordered {
			got := lower.AtLeast(higher)
			assert.Equal(t, i >= j, got, "%s.AtLeast(%s)", lower, higher)
		}
	}
}

package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// header {"alg":"HS256"} + payload {"rol":"admin","sub":"user@x.com"}
const adminToken = "eyJhbGciOiJIUzI1NiJ9.eyJyb2wiOiJhZG1pbiIsInN1YiI6InVzZXJAeC5jb20ifQ.sig"

func TestDecode(t *testing.T) {
	tests := []struct {
		name  string
		token string
		want  Claims
	}{
		{
			name:  "decodes payload segment",
			token: adminToken,
			want:  Claims{"rol": "admin", "sub": "user@x.com"},
		},
		{
			name:  "tolerates missing signature segment",
			token: "eyJhbGciOiJIUzI1NiJ9.eyJyb2wiOiJhZG1pbiIsInN1YiI6InVzZXJAeC5jb20ifQ",
			want:  Claims{"rol": "admin", "sub": "user@x.com"},
		},
		{
			name:  "empty token",
			token: "",
			want:  nil,
		},
		{
			name:  "no payload segment",
			token: "justonesegment",
			want:  nil,
		},
		{
			name:  "empty payload segment",
			token: "header..sig",
			want:  nil,
		},
		{
			name:  "payload is not base64",
			token: "header.!!!.sig",
			want:  nil,
		},
		{
			name:  "payload is not JSON",
			token: "header.bm90anNvbg.sig",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Decode(tt.token))
		})
	}
}

func TestRole(t *testing.T) {
	assert.Equal(t, "admin", Role(adminToken))

	// {"role":"mesero","sub":"w1"} - fallback claim name
	assert.Equal(t, "mesero", Role("h.eyJyb2xlIjoibWVzZXJvIiwic3ViIjoidzEifQ.s"))

	// {"rol":42} - non-string role is absent
	assert.Equal(t, "", Role("h.eyJyb2wiOjQyfQ.s"))

	assert.Equal(t, "", Role("garbage"))
}

func TestSubject(t *testing.T) {
	assert.Equal(t, "user@x.com", Subject(adminToken))

	// {"sub":123} - non-string subject is absent
	assert.Equal(t, "", Subject("h.eyJzdWIiOjEyM30.s"))

	assert.Equal(t, "", Subject(""))
}

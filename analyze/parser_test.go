package analyze

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLine_FailedLogin(t *testing.T) {
	rec, err := ParseLine(`199.72.81.55 - - [01/Jul/1995:00:00:01 -0400] "POST /login HTTP/1.0" 401 -`)
	assert.NoError(t, err)
	assert.Equal(t, "199.72.81.55", rec.Host)
	assert.Equal(t, "", rec.User)
	assert.Equal(t, "01/Jul/1995:00:00:01 -0400", rec.Time.Format())
	assert.Equal(t, MethodPost, rec.Method)
	assert.Equal(t, "/login", rec.Request)
	assert.Equal(t, 401, rec.Status)
	assert.Equal(t, uint64(0), rec.Size)
}

func TestParseLine_Get(t *testing.T) {
	rec, err := ParseLine(`220.149.67.62 - - [01/Sep/1995:00:00:27 -0400] "GET /images/KSC-logosmall.gif HTTP/1.0" 200 1204`)
	assert.NoError(t, err)
	assert.Equal(t, "220.149.67.62", rec.Host)
	assert.Equal(t, MethodGet, rec.Method)
	assert.Equal(t, "/images/KSC-logosmall.gif", rec.Request)
	assert.Equal(t, 200, rec.Status)
	assert.Equal(t, uint64(1204), rec.Size)
}

func TestParseLine_NamedUser(t *testing.T) {
	rec, err := ParseLine(`unicomp6.unicomp.net - alice [01/Jul/1995:00:00:06 -0400] "HEAD /shuttle/countdown/ HTTP/1.0" 200 0`)
	assert.NoError(t, err)
	assert.Equal(t, "alice", rec.User)
	assert.Equal(t, MethodHead, rec.Method)
}

func TestParseLine_DashStatus(t *testing.T) {
	rec, err := ParseLine(`host.example.com - - [01/Jul/1995:00:00:09 -0400] "GET /ksc.html HTTP/1.0" - -`)
	assert.NoError(t, err)
	assert.Equal(t, 0, rec.Status)
	assert.Equal(t, uint64(0), rec.Size)
}

func TestParseLine_KeepsRawLine(t *testing.T) {
	line := `199.72.81.55 - - [01/Jul/1995:00:00:01 -0400] "GET /history/apollo/ HTTP/1.0" 200 6245`
	rec, err := ParseLine(line + "\n")
	assert.NoError(t, err)
	assert.Equal(t, line, rec.Raw)
}

func TestParseLine_Rejections(t *testing.T) {
	cases := []struct {
		name string
		line string
	}{
		{"garbage", "alyssa, here is the log you asked for"},
		{"unsupported method", `h - - [01/Jul/1995:00:00:01 -0400] "PUT /x HTTP/1.0" 200 1`},
		{"missing path", `h - - [01/Jul/1995:00:00:01 -0400] "GET" 200 1`},
		{"unclosed time", `h - - [01/Jul/1995:00:00:01 -0400 "GET /x HTTP/1.0" 200 1`},
		{"empty", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseLine(tc.line)
			assert.Error(t, err)
		})
	}
}

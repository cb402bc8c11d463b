package exitcode

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/matchdaycli/matchday/internal/api"
	"github.com/matchdaycli/matchday/internal/errors"
)

func TestDetermineExitCode(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, Success},
		{"plain error", fmt.Errorf("boom"), GeneralError},
		{"unauthorized", &api.Error{Status: http.StatusUnauthorized, Detail: "bad credentials"}, AuthError},
		{"forbidden", &api.Error{Status: http.StatusForbidden, Detail: "nope"}, AuthError},
		{"backend failure", &api.Error{Status: http.StatusBadGateway, Detail: "HTTP 502"}, NetworkError},
		{"missing credentials", errors.NewMissingCredentialsError(), AuthError},
		{"not logged in", errors.NewNotLoggedInError(), AuthError},
		{"shape error", errors.NewUnexpectedShapeError("/players", fmt.Errorf("bad")), NetworkError},
		{"team name required", errors.NewTeamNameRequiredError(), UsageError},
		{"wrapped api error", fmt.Errorf("login failed: %w", &api.Error{Status: 401, Detail: "x"}), AuthError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, DetermineExitCode(tc.err))
		})
	}
}

package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ppiankov/svcprofile/internal/model"
	"github.com/ppiankov/svcprofile/internal/render"
	"github.com/ppiankov/svcprofile/internal/scoring"
	"github.com/ppiankov/svcprofile/internal/session"
)

func billingForm() model.Form {
	f := model.DefaultForm()
	f.ServiceName = "billing"
	f.BusinessCriticality = "2 - Highly Critical"
	f.DataClassification = "3"
	return f
}

func TestSubmitForm_JSON(t *testing.T) {
	t.Setenv(passwordEnv, "123")
	con, out := testConsole("")

	require.NoError(t, submitForm(context.Background(), con, localTestDialogue(), "emp001", "json", billingForm()))

	raw := out.Bytes()
	raw = raw[bytes.IndexByte(raw, '{'):]
	var rep render.Report
	require.NoError(t, json.Unmarshal(raw, &rep))
	assert.Equal(t, "billing", rep.ServiceName)
	assert.Equal(t, 0.75, rep.Result.Exposure)
	assert.Equal(t, 1.8, rep.Result.Weighted)
	assert.Equal(t, 3.0, rep.Result.MaxDominant)
	assert.Equal(t, 1.63, rep.Result.CVSSInspired)
	assert.Equal(t, scoring.TierP2, rep.Result.Profiles[scoring.ModelWeighted])
	assert.Equal(t, 1.8, rep.Charts.Position.Score)
}

func TestSubmitForm_OutOfRange(t *testing.T) {
	t.Setenv(passwordEnv, "123")
	con, _ := testConsole("")

	f := billingForm()
	f.Reachability = 2.5
	err := submitForm(context.Background(), con, localTestDialogue(), "emp001", "text", f)

	var re *model.RangeError
	require.True(t, errors.As(err, &re))
	assert.Equal(t, "reachability", re.Field)
}

func TestLocalDialogue_FormRequiresLogin(t *testing.T) {
	_, err := localTestDialogue().SubmitForm(context.Background(), billingForm())
	assert.ErrorIs(t, err, session.ErrNotLoggedIn)
}

func TestCollectForm_FileWithFlagOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "svc.yaml")
	content := "service_name: from-file\nbusiness_criticality: \"4 - Low Impact\"\nreachability: 2\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	formFile = path
	t.Cleanup(func() {
		formFile = ""
		formValues = model.DefaultForm()
	})
	require.NoError(t, formCmd.Flags().Set("name", "from-flag"))

	f, err := collectForm(formCmd)
	require.NoError(t, err)
	assert.Equal(t, "from-flag", f.ServiceName)
	assert.Equal(t, "4 - Low Impact", f.BusinessCriticality)
	assert.Equal(t, 2.0, f.Reachability)
	// Unset fields keep the form defaults.
	assert.Equal(t, model.DefaultOperationalAvailability, f.OperationalAvailability)
	assert.Equal(t, model.ClassificationOptions[0].String(), f.DataClassification)
}

func TestValidFormat(t *testing.T) {
	assert.NoError(t, validFormat("text"))
	assert.NoError(t, validFormat("json"))
	assert.Error(t, validFormat("yaml"))
}

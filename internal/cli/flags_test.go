package cli

import (
	"reflect"
	"testing"
)

func TestFlags_ToConfigFlags(t *testing.T) {
	flags := &Flags{
		OutputDir:  "/tmp/out",
		FolderName: "LogFromServer",
		Suites:     []string{"Root", "Child"},
		TestName:   "MyTest",
		Encoding:   "cp1251",
	}

	cfgFlags := flags.ToConfigFlags()
	if cfgFlags.OutputDir != "/tmp/out" || cfgFlags.FolderName != "LogFromServer" {
		t.Errorf("unexpected layout flags: %+v", cfgFlags)
	}
	if !reflect.DeepEqual(cfgFlags.Suites, []string{"Root", "Child"}) {
		t.Errorf("expected suites to be copied, got %v", cfgFlags.Suites)
	}

	flags.Suites[0] = "Changed"
	if cfgFlags.Suites[0] != "Root" {
		t.Error("config flags should not share the suites slice")
	}
}

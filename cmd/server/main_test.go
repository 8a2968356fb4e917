package main

import "testing"

func TestEnv(t *testing.T) {
	t.Setenv("CRM_TEST_KEY", "value")
	if got := env("CRM_TEST_KEY", "fallback"); got != "value" {
		t.Errorf("env = %q, want value", got)
	}
	if got := env("CRM_TEST_MISSING", "fallback"); got != "fallback" {
		t.Errorf("env = %q, want fallback", got)
	}
}

func TestEnvInt32(t *testing.T) {
	t.Setenv("CRM_TEST_CONNS", "25")
	if got := envInt32("CRM_TEST_CONNS", 10); got != 25 {
		t.Errorf("envInt32 = %d, want 25", got)
	}
	if got := envInt32("CRM_TEST_CONNS_MISSING", 10); got != 10 {
		t.Errorf("envInt32 = %d, want default 10", got)
	}

	t.Setenv("CRM_TEST_CONNS_BAD", "lots")
	if got := envInt32("CRM_TEST_CONNS_BAD", 10); got != 10 {
		t.Errorf("envInt32 = %d, want default on junk", got)
	}
}

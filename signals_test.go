package vigil

import "testing"

func TestSubscriptionCreated(t *testing.T) {
	if SubscriptionCreated.Name() != "vigil.subscription.created" {
		t.Errorf("expected name 'vigil.subscription.created', got %q", SubscriptionCreated.Name())
	}
}

func TestSubscriptionMatched(t *testing.T) {
	if SubscriptionMatched.Name() != "vigil.subscription.matched" {
		t.Errorf("expected name 'vigil.subscription.matched', got %q", SubscriptionMatched.Name())
	}
}

func TestSubscriptionDetached(t *testing.T) {
	if SubscriptionDetached.Name() != "vigil.subscription.detached" {
		t.Errorf("expected name 'vigil.subscription.detached', got %q", SubscriptionDetached.Name())
	}
}

package economy

import "testing"

func TestResourceAddSaturates(t *testing.T) {
	r := GameResource{Name: "Energy", Amount: 900, MaxCapacity: 1000}

	r.Add(50)
	if r.Amount != 950 {
		t.Errorf("Add(50) = %d, want 950", r.Amount)
	}

	r.Add(500)
	if r.Amount != 1000 {
		t.Errorf("Add past capacity = %d, want 1000", r.Amount)
	}
	if !r.AtCapacity() {
		t.Error("AtCapacity() should be true at max")
	}
}

func TestResourceSubtract(t *testing.T) {
	r := GameResource{Name: "Food", Amount: 50, MaxCapacity: 800}

	if !r.Subtract(30) {
		t.Fatal("Subtract(30) should succeed with 50 in stock")
	}
	if r.Amount != 20 {
		t.Errorf("Amount = %d, want 20", r.Amount)
	}

	if r.Subtract(21) {
		t.Error("Subtract(21) should fail with 20 in stock")
	}
	if r.Amount != 20 {
		t.Errorf("failed Subtract must not mutate, got %d", r.Amount)
	}
}

func TestResourceFillPercentage(t *testing.T) {
	r := GameResource{Amount: 100, MaxCapacity: 400}
	if got := r.FillPercentage(); got != 0.25 {
		t.Errorf("FillPercentage() = %v, want 0.25", got)
	}

	empty := GameResource{Amount: 10, MaxCapacity: 0}
	if got := empty.FillPercentage(); got != 0 {
		t.Errorf("FillPercentage with zero capacity = %v, want 0", got)
	}
}

func TestDefaultResourcesOrder(t *testing.T) {
	res := DefaultResources()
	if len(res) != ResourceCount {
		t.Fatalf("expected %d resources, got %d", ResourceCount, len(res))
	}

	wantNames := []string{"Energy", "Food", "Materials", "Research"}
	wantCaps := []int{1000, 800, 600, 400}
	for i, name := range wantNames {
		if res[i].Name != name {
			t.Errorf("resource %d = %q, want %q", i, res[i].Name, name)
		}
		if res[i].MaxCapacity != wantCaps[i] {
			t.Errorf("%s capacity = %d, want %d", name, res[i].MaxCapacity, wantCaps[i])
		}
	}
}

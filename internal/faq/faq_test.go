package faq

import "testing"

func testAccordion() *Accordion {
	return NewAccordion([]Item{
		{Question: "q1", Answer: "a1"},
		{Question: "q2", Answer: "a2"},
		{Question: "q3", Answer: "a3"},
	})
}

func TestAccordion_StartsClosed(t *testing.T) {
	a := testAccordion()
	for i := 0; i < a.Len(); i++ {
		if a.IsOpen(i) {
			t.Errorf("item %d open at start", i)
		}
	}
	if a.Open() != -1 {
		t.Errorf("Open() = %d, want -1", a.Open())
	}
}

func TestAccordion_ToggleOpensOnlyOne(t *testing.T) {
	a := testAccordion()
	a.Toggle(0)
	a.Toggle(2)

	if a.IsOpen(0) {
		t.Error("item 0 should close when item 2 opens")
	}
	if !a.IsOpen(2) {
		t.Error("item 2 should be open")
	}
}

func TestAccordion_ToggleOpenCloses(t *testing.T) {
	a := testAccordion()
	a.Toggle(1)
	a.Toggle(1)

	if a.IsOpen(1) {
		t.Error("toggling the open item should close it")
	}
	if a.Open() != -1 {
		t.Errorf("Open() = %d, want -1", a.Open())
	}
}

func TestAccordion_ToggleOutOfRange(t *testing.T) {
	a := testAccordion()
	a.Toggle(1)
	a.Toggle(-1)
	a.Toggle(3)

	if !a.IsOpen(1) {
		t.Error("out-of-range toggles should not change state")
	}
}

func TestAccordion_CloseAll(t *testing.T) {
	a := testAccordion()
	a.Toggle(0)
	a.CloseAll()
	if a.IsOpen(0) {
		t.Error("expected all closed")
	}
}

func TestDefaultItems(t *testing.T) {
	items := DefaultItems()
	if len(items) == 0 {
		t.Fatal("expected FAQ items")
	}
	for i, it := range items {
		if it.Question == "" || it.Answer == "" {
			t.Errorf("item %d is incomplete: %+v", i, it)
		}
	}
}

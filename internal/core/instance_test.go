package core

import "testing"

func validInstance() *Instance {
	inst := NewInstance(Grid{Width: 4, Height: 4}, 10)
	inst.Obstacles.Put(Cell{2, 2})
	inst.AddAgent(Cell{1, 1}, Cell{4, 4})
	inst.AddAgent(Cell{1, 2}, Cell{4, 3})
	return inst
}

func TestInstanceAccessors(t *testing.T) {
	inst := validInstance()

	starts := inst.Starts()
	goals := inst.Goals()
	if len(starts) != 2 || starts[1] != (Cell{1, 2}) {
		t.Errorf("Starts() = %v", starts)
	}
	if len(goals) != 2 || goals[0] != (Cell{4, 4}) {
		t.Errorf("Goals() = %v", goals)
	}

	if a := inst.AgentByID(2); a == nil || a.Goal != (Cell{4, 3}) {
		t.Errorf("AgentByID(2) = %+v", a)
	}
	if inst.AgentByID(0) != nil || inst.AgentByID(3) != nil {
		t.Error("AgentByID out of range should be nil")
	}
}

func TestInstanceValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Instance)
		wantErr bool
	}{
		{"valid", func(*Instance) {}, false},
		{"start on obstacle", func(i *Instance) { i.Agents[0].Start = Cell{2, 2} }, true},
		{"goal on obstacle", func(i *Instance) { i.Agents[1].Goal = Cell{2, 2} }, true},
		{"shared start", func(i *Instance) { i.Agents[1].Start = Cell{1, 1} }, true},
		{"shared goal", func(i *Instance) { i.Agents[1].Goal = Cell{4, 4} }, true},
		{"start equals own goal", func(i *Instance) { i.Agents[0].Goal = Cell{1, 1} }, false},
		{"outside grid", func(i *Instance) { i.Agents[0].Start = Cell{5, 1} }, true},
		{"obstacle outside grid", func(i *Instance) { i.Obstacles.Put(Cell{0, 0}) }, true},
		{"bad ids", func(i *Instance) { i.Agents[1].ID = 7 }, true},
		{"zero horizon", func(i *Instance) { i.Horizon = 0 }, true},
	}

	for _, tt := range tests {
		inst := validInstance()
		tt.mutate(inst)
		err := inst.Validate()
		if (err != nil) != tt.wantErr {
			t.Errorf("%s: Validate() = %v, wantErr %v", tt.name, err, tt.wantErr)
		}
	}
}

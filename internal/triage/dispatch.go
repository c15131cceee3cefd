package triage

import "fmt"

// Dispatcher maps task categories to their specialist draft agents.
// It is a pure lookup with no side effects; TaskOther and unknown
// categories have no agent and produce no draft.
type Dispatcher struct {
	agents map[TaskType]DraftAgent
}

// NewDispatcher creates a Dispatcher with the standard specialist roster.
func NewDispatcher(gen Generator) *Dispatcher {
	return &Dispatcher{
		agents: map[TaskType]DraftAgent{
			TaskRecordsRequest: NewRecordsAgent(gen),
			TaskScheduling:     NewSchedulingAgent(gen),
			TaskStatusUpdate:   NewStatusAgent(gen),
		},
	}
}

// Agent returns the specialist for a task type, or ErrNoAgent when the
// category has no draft agent.
func (d *Dispatcher) Agent(task TaskType) (DraftAgent, error) {
	agent, ok := d.agents[task]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNoAgent, task)
	}
	return agent, nil
}

// Tasks returns the task types that have a specialist agent.
func (d *Dispatcher) Tasks() []TaskType {
	tasks := make([]TaskType, 0, len(d.agents))
	for _, t := range taskTypes {
		if _, ok := d.agents[t]; ok {
			tasks = append(tasks, t)
		}
	}
	return tasks
}

package parameter

// System Execution Priorities (lower runs first within a stage)
const (
	PriorityInput       = 10
	PriorityAI          = 20 // Chasing before random movement
	PriorityRandomMove  = 25
	PriorityUseItem     = 30
	PriorityCombat      = 40
	PriorityMovement    = 50
	PriorityFOV         = 60 // After movement, before render
	PriorityMapRender   = 100
	PriorityActorRender = 110
	PriorityHUD         = 120
	PriorityEndTurn     = 900 // After everything, decides next TurnState
)

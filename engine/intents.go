package engine

import "github.com/lixenwraith/vi-crawler/component"

// Intents is the tick-local command queue for actor intents
// Producers push into the pending side; Commit at a flush boundary makes them visible to consumers;
// consumers Take the committed queue, which empties it
type Intents struct {
	pendingMoves   []component.WantsToMove
	pendingAttacks []component.WantsToAttack
	pendingPickUps []component.WantsToPickUp

	moves   []component.WantsToMove
	attacks []component.WantsToAttack
	pickUps []component.WantsToPickUp
}

// Move queues a movement intent
func (q *Intents) Move(m component.WantsToMove) {
	q.pendingMoves = append(q.pendingMoves, m)
}

// Attack queues an attack intent
func (q *Intents) Attack(a component.WantsToAttack) {
	q.pendingAttacks = append(q.pendingAttacks, a)
}

// PickUp queues a pickup intent
func (q *Intents) PickUp(p component.WantsToPickUp) {
	q.pendingPickUps = append(q.pendingPickUps, p)
}

// Commit appends pending intents to the consumable queues, preserving creation order
func (q *Intents) Commit() {
	q.moves = append(q.moves, q.pendingMoves...)
	q.attacks = append(q.attacks, q.pendingAttacks...)
	q.pickUps = append(q.pickUps, q.pendingPickUps...)
	q.pendingMoves = q.pendingMoves[:0]
	q.pendingAttacks = q.pendingAttacks[:0]
	q.pendingPickUps = q.pendingPickUps[:0]
}

// TakeMoves returns and clears committed movement intents
func (q *Intents) TakeMoves() []component.WantsToMove {
	out := q.moves
	q.moves = nil
	return out
}

// TakeAttacks returns and clears committed attack intents
func (q *Intents) TakeAttacks() []component.WantsToAttack {
	out := q.attacks
	q.attacks = nil
	return out
}

// TakePickUps returns and clears committed pickup intents
func (q *Intents) TakePickUps() []component.WantsToPickUp {
	out := q.pickUps
	q.pickUps = nil
	return out
}

// Produced reports whether any intent exists, pending or committed
func (q *Intents) Produced() bool {
	return len(q.pendingMoves)+len(q.pendingAttacks)+len(q.pendingPickUps)+
		len(q.moves)+len(q.attacks)+len(q.pickUps) > 0
}

// Reset drops everything, called at the start of each group
func (q *Intents) Reset() {
	q.pendingMoves = q.pendingMoves[:0]
	q.pendingAttacks = q.pendingAttacks[:0]
	q.pendingPickUps = q.pendingPickUps[:0]
	q.moves, q.attacks, q.pickUps = nil, nil, nil
}

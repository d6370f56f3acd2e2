package searcher

import "math"

// ucb1 is the mean reward, the pure exploitation score.
func ucb1(rewards float64, visits int) float64 {
	// Prioritize unexplored nodes
	if visits == 0 {
		return UnvisitedScore
	}
	return rewards / float64(visits)
}

// uct = q/n + c*sqrt(ln(N)/n)
func uct(rewards float64, visits int, parentVisits int, c float64) float64 {
	if visits == 0 || parentVisits == 0 {
		return ucb1(rewards, visits)
	}
	return ucb1(rewards, visits) + c*math.Sqrt(math.Log(float64(parentVisits))/float64(visits))
}

func (t *Tree) UCB1(id NodeID) float64 {
	n := t.Node(id)
	return ucb1(n.rewards, n.visits)
}

// UCT falls back to UCB1 for the root.
func (t *Tree) UCT(id NodeID) float64 {
	n := t.Node(id)
	if n.parent == NoNode {
		return ucb1(n.rewards, n.visits)
	}
	return uct(n.rewards, n.visits, t.nodes[n.parent].visits, t.exploration)
}

// BestChildUCB1 returns the open child of id with the highest mean reward.
func (t *Tree) BestChildUCB1(id NodeID) (NodeID, bool) {
	return t.bestChild(id, t.UCB1)
}

// BestChildUCT returns the open child of id to descend into while searching.
func (t *Tree) BestChildUCT(id NodeID) (NodeID, bool) {
	return t.bestChild(id, t.UCT)
}

// bestChild skips closed children and returns false when there is no open
// child or id is terminal. Ties go to the earliest expanded child.
func (t *Tree) bestChild(id NodeID, score func(NodeID) float64) (NodeID, bool) {
	n := t.Node(id)
	if n.IsTerminal() {
		return NoNode, false
	}

	best, maxScore := NoNode, math.Inf(-1)
	for _, c := range n.children {
		if t.nodes[c].closed {
			continue
		}
		if s := score(c); s > maxScore {
			best, maxScore = c, s
		}
	}
	return best, best != NoNode
}

// decide picks the move to play from id. Unlike selection it looks at closed
// children too, ranking solved ones by their exact value and the others by
// UCB1; on equal scores a solved child wins.
func (t *Tree) decide(id NodeID) (NodeID, bool) {
	best, maxScore, bestSolved := NoNode, math.Inf(-1), false
	for _, c := range t.Node(id).children {
		child := t.nodes[c]
		s := ucb1(child.rewards, child.visits)
		if child.solved {
			s = child.value
		}
		if s > maxScore || (s == maxScore && child.solved && !bestSolved) {
			best, maxScore, bestSolved = c, s, child.solved
		}
	}
	return best, best != NoNode
}

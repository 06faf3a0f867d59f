package rules

// DefaultRules returns the standard decision chain. Each call returns fresh
// rules so engines never share compiled state.
func DefaultRules() []*Rule {
	return []*Rule{
		{
			// Units still in the spawn zone when a spawn fires are killed.
			Name:         "escape-spawn",
			Priority:     600,
			ConditionSrc: `AboutToDieInSpawn()`,
			Action:       ActionEscapeSpawn,
		},
		{
			Name:         "flee",
			Priority:     500,
			ConditionSrc: `(Weak() || Outnumbered()) && CanFlee()`,
			Action:       ActionFlee,
		},
		{
			// Trapped and weak: take adjacent enemies down with us.
			Name:         "suicide",
			Priority:     400,
			ConditionSrc: `FacingCertainDeath()`,
			Action:       ActionSuicide,
		},
		{
			Name:         "attack-weakest",
			Priority:     300,
			ConditionSrc: `NearEnemy()`,
			Action:       ActionAttackWeakest,
		},
		{
			Name:         "explore",
			Priority:     200,
			ConditionSrc: `CanMove()`,
			Action:       ActionExplore,
		},
		{
			Name:         "guard",
			Priority:     100,
			ConditionSrc: `true`,
			Action:       ActionGuard,
		},
	}
}

package tags

import "github.com/yohamta/donburi"

var (
	Player     = donburi.NewTag().SetName("Player")
	Enemy      = donburi.NewTag().SetName("Enemy")
	Boss       = donburi.NewTag().SetName("Boss")
	Projectile = donburi.NewTag().SetName("Projectile")
	Arena      = donburi.NewTag().SetName("Arena")
)

package levels

// Builtin returns the built-in campaign. Heights are given relative to the
// ground line so the same layouts work for any configured view.
func Builtin(groundY float64) []Template {
	g := groundY
	coin := func(x, lift float64) Coin { return Coin{X: x, Y: g - lift, R: 10} }
	plat := func(x, lift, w float64) Platform { return Platform{X: x, Y: g - lift, W: w, H: 12} }
	question := func(x, lift float64) Block {
		return Block{X: x, Y: g - lift, W: 24, H: 24, Kind: BlockQuestion, State: BlockFull}
	}
	brick := func(x, lift float64) Block {
		return Block{X: x, Y: g - lift, W: 24, H: 24, Kind: BlockBrick, State: BlockFull}
	}
	heart := func(x, lift float64) Powerup { return Powerup{X: x, Y: g - lift, W: 20, H: 20, Value: 25} }

	return []Template{
		{
			ID:         "meadow",
			Name:       "Meadow",
			WorldWidth: 3200,
			EndX:       3000,
			Coins: []Coin{
				coin(360, 120), coin(520, 60), coin(780, 160),
				coin(1200, 120), coin(1400, 160), coin(1650, 100),
			},
			Platforms: []Platform{
				plat(300, 20, 160), plat(700, 70, 120), plat(1100, 40, 180),
				plat(1500, 90, 160), plat(1900, 60, 140), plat(2300, 110, 200),
			},
			Blocks: []Block{
				question(600, 120), brick(624, 120), brick(648, 120),
				question(1200, 160), brick(1450, 200),
			},
			Enemies: []Enemy{
				{Kind: "grunt", X: 900, VX: -0.6, PatrolLeft: 860, PatrolRight: 1000},
				{Kind: "brute", X: 1700, VX: -0.7, PatrolLeft: 1660, PatrolRight: 1780},
			},
			Powerups: []Powerup{heart(2000, 100)},
		},
		{
			ID:         "ridge",
			Name:       "Ridge",
			WorldWidth: 4000,
			EndX:       3800,
			Coins: []Coin{
				coin(400, 150), coin(600, 200), coin(900, 100), coin(1500, 250),
				coin(2000, 80), coin(2500, 180), coin(3000, 220), coin(3500, 120),
			},
			Platforms: []Platform{
				plat(200, 40, 100), plat(550, 90, 150), plat(800, 140, 200), plat(1200, 190, 120),
				plat(1800, 70, 250), plat(2400, 150, 180), plat(2900, 200, 200), plat(3400, 90, 150),
			},
			Blocks: []Block{
				question(600, 240), question(1500, 290), brick(2200, 120), brick(2224, 120),
			},
			Enemies: []Enemy{
				{Kind: "grunt", X: 500, VX: -0.8, PatrolLeft: 450, PatrolRight: 650},
				{Kind: "brute", X: 1000, VX: -0.6, PatrolLeft: 950, PatrolRight: 1150},
				{Kind: "grunt", X: 1600, VX: 0.7, PatrolLeft: 1550, PatrolRight: 1750},
				{Kind: "elite", X: 2600, VX: -0.9, PatrolLeft: 2500, PatrolRight: 2800},
			},
			Powerups: []Powerup{heart(1850, 110), heart(3000, 240)},
		},
		{
			ID:         "summit",
			Name:       "Summit",
			WorldWidth: 4400,
			EndX:       4200,
			Coins: []Coin{
				coin(350, 90), coin(700, 170), coin(1100, 60), coin(1450, 210),
				coin(1900, 130), coin(2450, 250), coin(3100, 90), coin(3700, 170),
			},
			Platforms: []Platform{
				plat(300, 50, 140), plat(650, 120, 120), plat(1000, 30, 200), plat(1400, 160, 140),
				plat(1850, 80, 160), plat(2400, 200, 180), plat(3050, 40, 220), plat(3650, 120, 160),
			},
			Blocks: []Block{
				question(700, 210), brick(724, 210), question(1450, 250),
				brick(2100, 110), question(2124, 110), brick(2148, 110),
			},
			Enemies: []Enemy{
				{Kind: "scout", X: 600, VX: 1.1, PatrolLeft: 520, PatrolRight: 760},
				{Kind: "grunt", X: 1200, VX: -0.7, PatrolLeft: 1150, PatrolRight: 1350},
				{Kind: "scout", X: 1700, VX: -1.2, PatrolLeft: 1620, PatrolRight: 1820},
				{Kind: "brute", X: 2700, VX: 0.6, PatrolLeft: 2600, PatrolRight: 2900},
				{Kind: "elite", X: 3400, VX: -0.8, PatrolLeft: 3250, PatrolRight: 3600},
			},
			Powerups: []Powerup{heart(2450, 240), heart(3300, 60)},
		},
	}
}

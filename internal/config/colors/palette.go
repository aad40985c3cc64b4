package colors

// palette holds the Kanagawa colors shared by the wave, dragon and lotus presets
var palette = struct {
	sumiInk4, sumiInk6                            string
	waveBlue1, winterGreen, winterBlue, winterRed string
	fujiWhite, fujiGray                           string
	oniViolet, crystalBlue, waveAqua2             string
	springGreen, carpYellow, peachRed             string

	dragonBlack3, dragonBlack4, dragonBlack6 string
	dragonWhite, dragonAsh, dragonViolet     string
	dragonGreen2, dragonYellow, dragonRed    string
	dragonAqua, dragonBlue2                  string

	lotusInk1, lotusGray3, lotusWhite3, lotusWhite4 string
	lotusViolet1, lotusViolet4, lotusBlue1          string
	lotusBlue4, lotusGreen, lotusYellow, lotusRed   string
	lotusRed4, lotusAqua, lotusTeal3                string
}{
	sumiInk4:    "#2A2A37",
	sumiInk6:    "#54546D",
	waveBlue1:   "#223249",
	winterGreen: "#2B3328",
	winterBlue:  "#252535",
	winterRed:   "#43242B",
	fujiWhite:   "#DCD7BA",
	fujiGray:    "#727169",
	oniViolet:   "#957FB8",
	crystalBlue: "#7E9CD8",
	waveAqua2:   "#7AA89F",
	springGreen: "#98BB6C",
	carpYellow:  "#E6C384",
	peachRed:    "#FF5D62",

	dragonBlack3: "#181616",
	dragonBlack4: "#282727",
	dragonBlack6: "#625E5A",
	dragonWhite:  "#C5C9C5",
	dragonAsh:    "#737C73",
	dragonViolet: "#8992A7",
	dragonGreen2: "#8A9A7B",
	dragonYellow: "#C4B28A",
	dragonRed:    "#C4746E",
	dragonAqua:   "#8EA4A2",
	dragonBlue2:  "#8BA4B0",

	lotusInk1:    "#545464",
	lotusGray3:   "#8A8980",
	lotusWhite3:  "#F2ECBC",
	lotusWhite4:  "#E7DBA0",
	lotusViolet1: "#A09CAC",
	lotusViolet4: "#624C83",
	lotusBlue1:   "#C7D7E0",
	lotusBlue4:   "#4D699B",
	lotusGreen:   "#6F894E",
	lotusYellow:  "#77713F",
	lotusRed:     "#C84053",
	lotusRed4:    "#D9A594",
	lotusAqua:    "#597B75",
	lotusTeal3:   "#5A7785",
}

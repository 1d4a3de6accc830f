package title

// exampleTitles are the sample torrent titles served by the examples
// endpoint. The list is fixed; entries cover episode, season-pack,
// subtitle-tagged, movie and web-dl naming styles.
var exampleTitles = []string{
	"The.Simpsons.S01E01.1080p.BluRay.x265.HEVC.10bit.AAC.5.1.Tigole",
	"www.Tamilblasters.party - The Wheel of Time (2021) Season 01 EP(01-08) [720p HQ HDRip - [Tam + Tel + Hin] - DDP5.1 - x264 - 2.7GB - ESubs]",
	"The.Walking.Dead.S06E07.SUBFRENCH.HDTV.x264-AMB3R.mkv",
	"Avengers.Endgame.2019.2160p.UHD.BluRay.x265.HDR.Atmos-TERMINAL",
	"Game.of.Thrones.S08E06.The.Iron.Throne.1080p.AMZN.WEB-DL.DDP5.1.H.264-GoT",
}

// ExampleTitleCount returns the number of fixed sample titles.
func ExampleTitleCount() int {
	return len(exampleTitles)
}

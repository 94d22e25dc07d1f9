package seed

import "time"

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

// Movies is the built-in catalogue. It seeds an empty database and backs
// the static fallback catalog.
var Movies = []MovieSeed{
	{
		Name:          "Captain America: Brave New World",
		Theatre:       "ReelCritic IMAX",
		ReviewCount:   245,
		Status:        "NOW SHOWING",
		PosterURL:     "https://m.media-amazon.com/images/M/MV5BNDRjY2E0ZmEtN2QwNi00NTEwLWI3MWItODNkMGYwYWFjNGE0XkEyXkFqcGc@._V1_FMjpg_UX1000_.jpg",
		Description:   "Sam Wilson, who's officially taken up the mantle of Captain America, finds himself in the middle of an international incident.",
		Director:      "Julius Onah",
		Cast:          []string{"Anthony Mackie", "Danny Ramirez", "Shira Haas", "Xosha Roquemore", "Carl Lumbly"},
		Genre:         "Action, Adventure, Sci-Fi",
		Language:      "English",
		Duration:      118,
		Rating:        7.2,
		ReleaseDate:   date(2025, 2, 14),
		Certificate:   "PG-13",
		TrailerURL:    "https://www.youtube.com/watch?v=FEa9pPqGhPY",
		BookMyShowURL: "https://in.bookmyshow.com/explore/movies-mumbai?q=captain+america",
	},
	{
		Name:          "Thunderbolts",
		Theatre:       "INOX",
		ReviewCount:   312,
		Status:        "COMING SOON",
		PosterURL:     "https://m.media-amazon.com/images/M/MV5BYWE2NmNmYTItZGY0ZC00MmY2LTk1NDAtMGUyMGEzMjcxNWM0XkEyXkFqcGc@._V1_FMjpg_UY2818_.jpg",
		Description:   "A group of supervillains are recruited to go on missions for the government.",
		Director:      "Jake Schreier",
		Cast:          []string{"Florence Pugh", "Sebastian Stan", "David Harbour", "Wyatt Russell", "Julia Louis-Dreyfus"},
		Genre:         "Action, Adventure, Comedy",
		Language:      "English",
		Duration:      130,
		Rating:        7.5,
		ReleaseDate:   date(2025, 5, 2),
		Certificate:   "PG-13",
		TrailerURL:    "https://www.youtube.com/watch?v=bCDhh5GK8sg",
		BookMyShowURL: "https://in.bookmyshow.com/explore/movies-mumbai?q=thunderbolts",
	},
	{
		Name:          "Fantastic Four: First Steps",
		Theatre:       "Cinepolis",
		ReviewCount:   298,
		Status:        "COMING SOON",
		PosterURL:     "https://m.media-amazon.com/images/M/MV5BOGM5MzA3MDAtYmEwMi00ZDNiLTg4MDgtMTZjOTc0ZGMyNTIwXkEyXkFqcGc@._V1_FMjpg_UX1086_.jpg",
		Description:   "A group of astronauts gain superpowers after a cosmic radiation exposure and must use them to oppose the plans of their enemy, Doctor Doom.",
		Director:      "Matt Shakman",
		Cast:          []string{"Pedro Pascal", "Vanessa Kirby", "Joseph Quinn", "Ebon Moss-Bachrach", "Ralph Ineson"},
		Genre:         "Action, Adventure, Sci-Fi",
		Language:      "English",
		Duration:      125,
		Rating:        8.0,
		ReleaseDate:   date(2025, 7, 25),
		Certificate:   "PG-13",
		TrailerURL:    "https://www.youtube.com/watch?v=NYnQnNerddA",
		BookMyShowURL: "https://in.bookmyshow.com/explore/movies-mumbai?q=fantastic+four",
	},
	{
		Name:          "Superman",
		Theatre:       "PVR Cinemas",
		ReviewCount:   189,
		Status:        "COMING SOON",
		PosterURL:     "https://m.media-amazon.com/images/M/MV5BOGMwZGJiM2EtMzEwZC00YTYzLWIxNzYtMmJmZWNlZjgxZTMwXkEyXkFqcGc@._V1_FMjpg_UY2048_.jpg",
		Description:   "Superman struggles to reconcile his Kryptonian heritage with his human upbringing as Clark Kent.",
		Director:      "James Gunn",
		Cast:          []string{"David Corenswet", "Rachel Brosnahan", "Nicholas Hoult", "Edi Gathegi", "Nathan Fillion"},
		Genre:         "Action, Adventure, Drama",
		Language:      "English",
		Duration:      140,
		Rating:        8.5,
		ReleaseDate:   date(2025, 7, 11),
		Certificate:   "PG-13",
		TrailerURL:    "https://www.youtube.com/watch?v=BdRF2sCCOz0",
		BookMyShowURL: "https://in.bookmyshow.com/explore/movies-mumbai?q=superman",
	},
	{
		Name:          "Dune: Part Two",
		Theatre:       "CinemaVerse IMAX",
		ReviewCount:   523,
		Status:        "NOW SHOWING",
		PosterURL:     "https://image.tmdb.org/t/p/w500/1pdfLvkbY9ohJlCjQH2CZjjYVvJ.jpg",
		Description:   "Paul Atreides unites with Chani and the Fremen while seeking revenge against the conspirators who destroyed his family.",
		Director:      "Denis Villeneuve",
		Cast:          []string{"Timothée Chalamet", "Zendaya", "Rebecca Ferguson", "Josh Brolin", "Austin Butler"},
		Genre:         "Action, Adventure, Drama",
		Language:      "English",
		Duration:      166,
		Rating:        8.8,
		ReleaseDate:   date(2024, 3, 1),
		Certificate:   "PG-13",
		TrailerURL:    "https://www.youtube.com/watch?v=Way9Dexny3w",
		BookMyShowURL: "https://in.bookmyshow.com/explore/movies-mumbai?q=dune+part+two",
	},
	{
		Name:          "Deadpool & Wolverine",
		Theatre:       "INOX",
		ReviewCount:   487,
		Status:        "NOW SHOWING",
		PosterURL:     "https://image.tmdb.org/t/p/w500/8cdWjvZQUExUUTzyp4t6EDMubfO.jpg",
		Description:   "Deadpool's peaceful existence comes crashing down when the Time Variance Authority recruits him to help safeguard the multiverse.",
		Director:      "Shawn Levy",
		Cast:          []string{"Ryan Reynolds", "Hugh Jackman", "Emma Corrin", "Morena Baccarin", "Rob Delaney"},
		Genre:         "Action, Comedy, Sci-Fi",
		Language:      "English",
		Duration:      128,
		Rating:        8.1,
		ReleaseDate:   date(2024, 7, 26),
		Certificate:   "R",
		TrailerURL:    "https://www.youtube.com/watch?v=73_1biulkYk",
		BookMyShowURL: "https://in.bookmyshow.com/explore/movies-mumbai?q=deadpool+wolverine",
	},
	{
		Name:          "Inside Out 2",
		Theatre:       "Cinepolis",
		ReviewCount:   432,
		Status:        "NOW SHOWING",
		PosterURL:     "https://image.tmdb.org/t/p/w500/vpnVM9B6NMmQpWeZvzLvDESb2QY.jpg",
		Description:   "As Riley enters her teenage years, her emotions face new challenges when new emotions arrive at headquarters.",
		Director:      "Kelsey Mann",
		Cast:          []string{"Amy Poehler", "Maya Hawke", "Kensington Tallman", "Liza Lapira", "Tony Hale"},
		Genre:         "Animation, Family, Comedy",
		Language:      "English",
		Duration:      96,
		Rating:        7.8,
		ReleaseDate:   date(2024, 6, 14),
		Certificate:   "PG",
		TrailerURL:    "https://www.youtube.com/watch?v=LEjhY15eCx0",
		BookMyShowURL: "https://in.bookmyshow.com/explore/movies-mumbai?q=inside+out+2",
	},
	{
		Name:          "Beetlejuice Beetlejuice",
		Theatre:       "PVR Cinemas",
		ReviewCount:   298,
		Status:        "NOW SHOWING",
		PosterURL:     "https://image.tmdb.org/t/p/w500/kKgQzkUCnQmeTPkyIwHly2t6ZFI.jpg",
		Description:   "After an unexpected family tragedy, three generations of the Deetz family return home to Winter River.",
		Director:      "Tim Burton",
		Cast:          []string{"Michael Keaton", "Winona Ryder", "Catherine O'Hara", "Jenna Ortega", "Willem Dafoe"},
		Genre:         "Comedy, Horror, Fantasy",
		Language:      "English",
		Duration:      104,
		Rating:        7.2,
		ReleaseDate:   date(2024, 9, 6),
		Certificate:   "PG-13",
		TrailerURL:    "https://www.youtube.com/watch?v=CoZqL3N_jL0",
		BookMyShowURL: "https://in.bookmyshow.com/explore/movies-mumbai?q=beetlejuice",
	},
	{
		Name:          "Oppenheimer",
		Theatre:       "CinemaVerse IMAX",
		ReviewCount:   612,
		Status:        "NOW SHOWING",
		PosterURL:     "https://image.tmdb.org/t/p/w500/8Gxv8gSFCU0XGDykEGv7zR1n2ua.jpg",
		Description:   "The story of American scientist J. Robert Oppenheimer and his role in the development of the atomic bomb.",
		Director:      "Christopher Nolan",
		Cast:          []string{"Cillian Murphy", "Emily Blunt", "Matt Damon", "Robert Downey Jr.", "Florence Pugh"},
		Genre:         "Biography, Drama, History",
		Language:      "English",
		Duration:      180,
		Rating:        8.4,
		ReleaseDate:   date(2023, 7, 21),
		Certificate:   "R",
		TrailerURL:    "https://www.youtube.com/watch?v=uYPbbksJxIg",
		BookMyShowURL: "https://in.bookmyshow.com/explore/movies-mumbai?q=oppenheimer",
	},
	{
		Name:          "Barbie",
		Theatre:       "INOX",
		ReviewCount:   578,
		Status:        "NOW SHOWING",
		PosterURL:     "https://image.tmdb.org/t/p/w500/iuFNMS8U5cb6xfzi51Dbkovj7vM.jpg",
		Description:   "Barbie and Ken are having the time of their lives in the colorful and seemingly perfect world of Barbie Land.",
		Director:      "Greta Gerwig",
		Cast:          []string{"Margot Robbie", "Ryan Gosling", "America Ferrera", "Kate McKinnon", "Issa Rae"},
		Genre:         "Adventure, Comedy, Fantasy",
		Language:      "English",
		Duration:      114,
		Rating:        7.0,
		ReleaseDate:   date(2023, 7, 21),
		Certificate:   "PG-13",
		TrailerURL:    "https://www.youtube.com/watch?v=pBk4NYhWNMM",
		BookMyShowURL: "https://in.bookmyshow.com/explore/movies-mumbai?q=barbie",
	},
	{
		Name:          "Guardians of the Galaxy Vol. 3",
		Theatre:       "Cinepolis",
		ReviewCount:   456,
		Status:        "NOW SHOWING",
		PosterURL:     "https://image.tmdb.org/t/p/w500/r2J02Z2OpNTctfOSN1Ydgii51I3.jpg",
		Description:   "Still reeling from the loss of Gamora, Peter Quill rallies his team to defend the universe and protect one of their own.",
		Director:      "James Gunn",
		Cast:          []string{"Chris Pratt", "Zoe Saldana", "Dave Bautista", "Karen Gillan", "Pom Klementieff"},
		Genre:         "Action, Adventure, Comedy",
		Language:      "English",
		Duration:      150,
		Rating:        8.0,
		ReleaseDate:   date(2023, 5, 5),
		Certificate:   "PG-13",
		TrailerURL:    "https://www.youtube.com/watch?v=u3V5KDHRQvk",
		BookMyShowURL: "https://in.bookmyshow.com/explore/movies-mumbai?q=guardians+galaxy",
	},
	{
		Name:          "John Wick: Chapter 4",
		Theatre:       "PVR Cinemas",
		ReviewCount:   389,
		Status:        "NOW SHOWING",
		PosterURL:     "https://image.tmdb.org/t/p/w500/vZloFAK7NmvMGKE7VkF5UHaz0I.jpg",
		Description:   "John Wick uncovers a path to defeating The High Table. But before he can earn his freedom, Wick must face off against a new enemy.",
		Director:      "Chad Stahelski",
		Cast:          []string{"Keanu Reeves", "Donnie Yen", "Bill Skarsgård", "Laurence Fishburne", "Hiroyuki Sanada"},
		Genre:         "Action, Crime, Thriller",
		Language:      "English",
		Duration:      169,
		Rating:        7.7,
		ReleaseDate:   date(2023, 3, 24),
		Certificate:   "R",
		TrailerURL:    "https://www.youtube.com/watch?v=qEVUtrk8_B4",
		BookMyShowURL: "https://in.bookmyshow.com/explore/movies-mumbai?q=john+wick+4",
	},
	{
		Name:          "Avengers: Endgame",
		Theatre:       "CinemaVerse IMAX",
		ReviewCount:   743,
		Status:        "CLASSIC",
		PosterURL:     "https://image.tmdb.org/t/p/w500/or06FN3Dka5tukK1e9sl16pB3iy.jpg",
		Description:   "After the devastating events of Avengers: Infinity War, the universe is in ruins. With the help of remaining allies, the Avengers assemble once more in order to reverse Thanos' actions and restore balance to the universe.",
		Director:      "Anthony Russo, Joe Russo",
		Cast:          []string{"Robert Downey Jr.", "Chris Evans", "Mark Ruffalo", "Chris Hemsworth", "Scarlett Johansson"},
		Genre:         "Action, Adventure, Drama",
		Language:      "English",
		Duration:      181,
		Rating:        8.4,
		ReleaseDate:   date(2019, 4, 26),
		Certificate:   "PG-13",
		TrailerURL:    "https://www.youtube.com/watch?v=TcMBFSGVi1c",
		BookMyShowURL: "https://in.bookmyshow.com/explore/movies-mumbai?q=avengers+endgame",
	},
	{
		Name:          "The Dark Knight",
		Theatre:       "INOX",
		ReviewCount:   892,
		Status:        "CLASSIC",
		PosterURL:     "https://image.tmdb.org/t/p/w500/qJ2tW6WMUDux911r6m7haRef0WH.jpg",
		Description:   "When the menace known as the Joker wreaks havoc and chaos on the people of Gotham, Batman must accept one of the greatest psychological and physical tests of his ability to fight injustice.",
		Director:      "Christopher Nolan",
		Cast:          []string{"Christian Bale", "Heath Ledger", "Aaron Eckhart", "Michael Caine", "Gary Oldman"},
		Genre:         "Action, Crime, Drama",
		Language:      "English",
		Duration:      152,
		Rating:        9.0,
		ReleaseDate:   date(2008, 7, 18),
		Certificate:   "PG-13",
		TrailerURL:    "https://www.youtube.com/watch?v=EXeTwQWrcwY",
		BookMyShowURL: "https://in.bookmyshow.com/explore/movies-mumbai?q=dark+knight",
	},
	{
		Name:          "Inception",
		Theatre:       "Cinepolis",
		ReviewCount:   723,
		Status:        "CLASSIC",
		PosterURL:     "https://image.tmdb.org/t/p/w500/ljsZTbVsrQSqZgWeep2B1QiDKuh.jpg",
		Description:   "A thief who steals corporate secrets through the use of dream-sharing technology is given the inverse task of planting an idea into the mind of a C.E.O.",
		Director:      "Christopher Nolan",
		Cast:          []string{"Leonardo DiCaprio", "Marion Cotillard", "Tom Hardy", "Joseph Gordon-Levitt", "Elliot Page"},
		Genre:         "Action, Sci-Fi, Thriller",
		Language:      "English",
		Duration:      148,
		Rating:        8.8,
		ReleaseDate:   date(2010, 7, 16),
		Certificate:   "PG-13",
		TrailerURL:    "https://www.youtube.com/watch?v=YoHD9XEInc0",
		BookMyShowURL: "https://in.bookmyshow.com/explore/movies-mumbai?q=inception",
	},
	{
		Name:          "Parasite",
		Theatre:       "PVR Cinemas",
		ReviewCount:   654,
		Status:        "CLASSIC",
		PosterURL:     "https://image.tmdb.org/t/p/w500/7IiTTgloJzvGI1TAYymCfbfl3vT.jpg",
		Description:   "Greed and class discrimination threaten the newly formed symbiotic relationship between the wealthy Park family and the destitute Kim clan.",
		Director:      "Bong Joon Ho",
		Cast:          []string{"Kang-ho Song", "Sun-kyun Lee", "Yeo-jeong Jo", "Woo-sik Choi", "So-dam Park"},
		Genre:         "Comedy, Drama, Thriller",
		Language:      "Korean",
		Duration:      132,
		Rating:        8.5,
		ReleaseDate:   date(2019, 5, 30),
		Certificate:   "R",
		TrailerURL:    "https://www.youtube.com/watch?v=5xH0HfJHsaY",
		BookMyShowURL: "https://in.bookmyshow.com/explore/movies-mumbai?q=parasite",
	},
}

package dataset

// Travel durations in seconds for every train segment, past, present and
// future, keyed by ascending station-code pair.
var trainSegmentDurations = map[string]int{
	"BP1-BP2": 85,
	"BP2-BP3": 50,
	"BP3-BP4": 60,
	"BP4-BP5": 60,
	"BP5-BP6": 90,
	"BP6-BP7": 60,
	"BP6-BP13": 70,
	"BP6-BP14": 120,
	"BP7-BP8": 85,
	"BP8-BP9": 60,
	"BP9-BP10": 105,
	"BP10-BP11": 60,
	"BP11-BP12": 80,
	"BP12-BP13": 60,
	"CC1-CC2": 85,
	"CC2-CC3": 85,
	"CC3-CC4": 110,
	"CC4-CC5": 105,
	"CC4-CC34": 115,
	"CC5-CC6": 120,
	"CC6-CC7": 85,
	"CC7-CC8": 85,
	"CC8-CC9": 115,
	"CC9-CC10": 100,
	"CC10-CC11": 100,
	"CC11-CC12": 110,
	"CC12-CC13": 125,
	"CC13-CC14": 100,
	"CC14-CC15": 135,
	"CC15-CC16": 130,
	"CC16-CC17": 100,
	"CC17-CC18": 110,
	"CC17-CC19": 245,
	"CC18-CC19": 175,
	"CC19-CC20": 100,
	"CC20-CC21": 125,
	"CC21-CC22": 95,
	"CC22-CC23": 90,
	"CC23-CC24": 90,
	"CC24-CC25": 120,
	"CC25-CC26": 105,
	"CC26-CC27": 115,
	"CC27-CC28": 90,
	"CC28-CC29": 195,
	"CC29-CC30": 110,
	"CC30-CC31": 95,
	"CC31-CC32": 115,
	"CC32-CC33": 105,
	"CC33-CC34": 110,
	"CE0X-CE0Y": 120,
	"CE0Y-CE0Z": 105,
	"CE0Z-CE1": 115,
	"CE1-CE2": 110,
	"CG-CG1": 135,
	"CG1-CG2": 255,
	"CP1-CP2": 240,
	"CP2-CP3": 360,
	"CP3-CP4": 240,
	"CR1-CR2": 240,
	"CR2-CR3": 270,
	"CR3-CR4": 120,
	"CR4-CR5": 120,
	"CR5-CR6": 120,
	"CR6-CR7": 480,
	"CR7-CR8": 120,
	"CR8-CR9": 240,
	"CR9-CR10": 180,
	"CR10-CR11": 180,
	"CR11-CR12": 120,
	"CR12-CR13": 180,
	"CR13-CR14": 540,
	"CR14-CR15": 180,
	"CR15-CR16": 120,
	"CR16-CR17": 240,
	"CR17-CR18": 120,
	"CR18-CR19": 300,
	"DT-DT1": 245,
	"DT1-DT2": 85,
	"DT2-DT3": 75,
	"DT3-DT4": 75,
	"DT3-DT5": 175,
	"DT4-DT5": 120,
	"DT5-DT6": 90,
	"DT6-DT7": 105,
	"DT7-DT8": 90,
	"DT8-DT9": 80,
	"DT9-DT10": 90,
	"DT10-DT11": 105,
	"DT11-DT12": 105,
	"DT12-DT13": 55,
	"DT13-DT14": 70,
	"DT14-DT15": 80,
	"DT15-DT16": 95,
	"DT16-DT17": 70,
	"DT17-DT18": 60,
	"DT18-DT19": 55,
	"DT19-DT20": 105,
	"DT20-DT21": 75,
	"DT21-DT22": 70,
	"DT22-DT23": 90,
	"DT23-DT24": 100,
	"DT24-DT25": 125,
	"DT25-DT26": 75,
	"DT26-DT27": 80,
	"DT27-DT28": 90,
	"DT28-DT29": 80,
	"DT29-DT30": 110,
	"DT30-DT31": 115,
	"DT31-DT32": 100,
	"DT32-DT33": 100,
	"DT33-DT34": 160,
	"DT34-DT35": 75,
	"DT35-DT36": 70,
	"DT36-DT37": 95,
	"EW1-EW2": 150,
	"EW2-EW3": 105,
	"EW3-EW4": 150,
	"EW4-EW5": 125,
	"EW5-EW6": 140,
	"EW6-EW7": 85,
	"EW7-EW8": 85,
	"EW8-EW9": 95,
	"EW9-EW10": 100,
	"EW10-EW11": 85,
	"EW11-EW12": 85,
	"EW12-EW13": 85,
	"EW13-EW14": 90,
	"EW14-EW15": 105,
	"EW15-EW16": 85,
	"EW15-NS26": 105,
	"EW16-EW17": 130,
	"EW17-EW18": 105,
	"EW18-EW19": 100,
	"EW19-EW20": 90,
	"EW20-EW21": 90,
	"EW21-EW22": 105,
	"EW21-EW23": 300,
	"EW22-EW23": 120,
	"EW23-EW24": 260,
	"EW24-EW25": 105,
	"EW25-EW26": 110,
	"EW26-EW27": 145,
	"EW27-EW28": 80,
	"EW28-EW29": 170,
	"EW29-EW30": 150,
	"EW30-EW31": 125,
	"EW31-EW32": 95,
	"EW32-EW33": 105,
	"JE0-JE1": 100,
	"JE1-JE2": 80,
	"JE2-JE3": 85,
	"JE3-JE4": 80,
	"JE4-JE5": 85,
	"JE5-JE6": 90,
	"JE6-JE7": 80,
	"JS1-JS2": 90,
	"JS2-JS3": 140,
	"JS3-JS4": 100,
	"JS4-JS5": 125,
	"JS5-JS6": 85,
	"JS6-JS7": 80,
	"JS7-JS8": 95,
	"JS7-JW1": 75,
	"JS8-JS9": 85,
	"JS9-JS10": 85,
	"JS10-JS11": 85,
	"JS11-JS12": 75,
	"JW1-JW2": 85,
	"JW2-JW3": 80,
	"JW3-JW4": 90,
	"JW4-JW5": 80,
	"NE1-NE3": 170,
	"NE3-NE4": 75,
	"NE4-NE5": 70,
	"NE5-NE6": 115,
	"NE6-NE7": 90,
	"NE7-NE8": 80,
	"NE8-NE9": 95,
	"NE9-NE10": 125,
	"NE10-NE11": 80,
	"NE10-NE12": 190,
	"NE11-NE12": 100,
	"NE12-NE13": 130,
	"NE13-NE14": 120,
	"NE14-NE15": 105,
	"NE14-NE16": 215,
	"NE15-NE16": 90,
	"NE16-NE17": 130,
	"NE17-NE18": 115,
	"NS1-NS2": 225,
	"NS2-NS3": 95,
	"NS3-NS3A": 120,
	"NS3-NS4": 205,
	"NS3A-NS4": 135,
	"NS4-NS5": 120,
	"NS5-NS6": 140,
	"NS5-NS7": 250,
	"NS6-NS7": 155,
	"NS7-NS8": 125,
	"NS8-NS9": 125,
	"NS9-NS10": 135,
	"NS10-NS11": 150,
	"NS11-NS12": 110,
	"NS11-NS13": 240,
	"NS12-NS13": 120,
	"NS13-NS14": 105,
	"NS14-NS15": 300,
	"NS15-NS16": 115,
	"NS16-NS17": 160,
	"NS17-NS18": 95,
	"NS18-NS19": 95,
	"NS19-NS20": 110,
	"NS20-NS21": 100,
	"NS21-NS22": 110,
	"NS22-NS23": 100,
	"NS23-NS24": 75,
	"NS24-NS25": 85,
	"NS25-NS26": 100,
	"NS26-NS27": 90,
	"NS27-NS28": 115,
	"PE1-PE2": 55,
	"PE2-PE3": 60,
	"PE3-PE4": 60,
	"PE4-PE5": 75,
	"PE5-PE6": 55,
	"PE6-PE7": 55,
	"PTC-PE1": 120,
	"PTC-PE5": 210,
	"PTC-PE6": 180,
	"PTC-PE7": 135,
	"PTC-PW1": 90,
	"PTC-PW5": 270,
	"PTC-PW7": 145,
	"PW1-PW2": 50,
	"PW1-PW3": 125,
	"PW1-PW5": 265,
	"PW2-PW3": 65,
	"PW3-PW4": 70,
	"PW3-PW5": 140,
	"PW4-PW5": 60,
	"PW5-PW6": 50,
	"PW6-PW7": 55,
	"SE1-SE2": 75,
	"SE2-SE3": 55,
	"SE3-SE4": 70,
	"SE4-SE5": 90,
	"STC-SE1": 100,
	"STC-SE5": 150,
	"STC-SW1": 125,
	"STC-SW2": 190,
	"STC-SW4": 355,
	"STC-SW8": 155,
	"SW1-SW2": 55,
	"SW2-SW3": 75,
	"SW2-SW4": 165,
	"SW3-SW4": 80,
	"SW4-SW5": 75,
	"SW5-SW6": 65,
	"SW6-SW7": 70,
	"SW7-SW8": 65,
	"TE1-TE2": 125,
	"TE2-TE3": 105,
	"TE3-TE4": 250,
	"TE4-TE4A": 110,
	"TE4-TE5": 160,
	"TE4A-TE5": 105,
	"TE5-TE6": 125,
	"TE6-TE7": 95,
	"TE7-TE8": 115,
	"TE8-TE9": 165,
	"TE9-TE10": 105,
	"TE9-TE11": 185,
	"TE10-TE11": 120,
	"TE11-TE12": 135,
	"TE12-TE13": 75,
	"TE13-TE14": 95,
	"TE14-TE15": 105,
	"TE15-TE16": 70,
	"TE16-TE17": 90,
	"TE17-TE18": 60,
	"TE18-TE19": 75,
	"TE19-TE20": 65,
	"TE20-TE21": 95,
	"TE20-TE22": 130,
	"TE21-TE22": 75,
	"TE22-TE22A": 120,
	"TE22-TE23": 195,
	"TE22A-TE23": 90,
	"TE23-TE24": 115,
	"TE24-TE25": 115,
	"TE25-TE26": 100,
	"TE26-TE27": 95,
	"TE27-TE28": 125,
	"TE28-TE29": 125,
	"TE29-TE30": 90,
	"TE30-TE31": 95,
	"TE31-TE32": 290,
	"TE32-TE33": 185,
	"TE33-TE34": 250,
	"TE34-TE35": 145,
}

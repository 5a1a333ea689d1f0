package chessboard

// Magic multipliers determined offline via trial and error with a random
// number generator, such that hashing the relevant occupancy bits yields
// only constructive collisions. Verified again at table build time.
var rookMagicNumbers = [64]uint64{
	0x088000102088C001, 0x10C0200040001000, 0x83001041000B2000,
	0x0680280080041000, 0x488004000A080080, 0x0100180400010002,
	0x040001C401021008, 0x02000C04A980C302, 0x0000800040082084,
	0x5020C00820025000, 0x0001002001044012, 0x0402001020400A00,
	0x00C0800800040080, 0x4028800200040080, 0x00A0804200802500,
	0x8004800040802100, 0x0080004000200040, 0x1082810020400100,
	0x0020004010080040, 0x2004818010042800, 0x0601010008005004,
	0x4600808002001400, 0x0010040009180210, 0x020412000406C091,
	0x040084228000C000, 0x8000810100204000, 0x0084110100402000,
	0x0046001A00204210, 0x2001040080080081, 0x0144020080800400,
	0x0840108400080229, 0x0480308A0000410C, 0x0460324002800081,
	0x620080A001804000, 0x2800802000801006, 0x0002809000800800,
	0x4C09040080802800, 0x4808800C00800200, 0x0200311004001802,
	0x0400008402002141, 0x0410800140008020, 0x000080C001050020,
	0x004080204A020010, 0x0224201001010038, 0x0109001108010004,
	0x0282004844020010, 0x8228180110040082, 0x0001000080C10002,
	0x024000C120801080, 0x0001406481060200, 0x0101243200418600,
	0x0108800800100080, 0x4022080100100D00, 0x0000843040600801,
	0x8301000200CC0500, 0x1000004500840200, 0x1100104100800069,
	0x2001008440001021, 0x2002008830204082, 0x0010145000082101,
	0x01A2001004200842, 0x1007000608040041, 0x000A08100203028C,
	0x02D4048040290402,
}

var bishopMagicNumbers = [64]uint64{
	0x0008201802242020, 0x0021040424806220, 0x4006360602013080,
	0x0004410020408002, 0x2102021009001140, 0x08C2021004000001,
	0x6001031120200820, 0x1018310402201410, 0x401CE00210820484,
	0x001029D001004100, 0x2C00101080810032, 0x0000082581000010,
	0x10000A0210110020, 0x200002016C202000, 0x0201018821901000,
	0x006A0300420A2100, 0x0010014005450400, 0x1008C12008028280,
	0x00010010004A0040, 0x3000820802044020, 0x0000800405A02820,
	0x8042004300420240, 0x10060801210D2000, 0x0210840500511061,
	0x0008142118509020, 0x0021109460040104, 0x00A1480090019030,
	0x0102008808008020, 0x884084000880E001, 0x040041020A030100,
	0x3000810104110805, 0x04040A2006808440, 0x0044040404C01100,
	0x4122B80800245004, 0x0044020502380046, 0x0100400888020200,
	0x01C0002060020080, 0x4008811100021001, 0x8208450441040609,
	0x0408004900008088, 0x0294212051220882, 0x000041080810E062,
	0x10480A018E005000, 0x80400A0204201600, 0x2800200204100682,
	0x0020200400204441, 0x0A500600A5002400, 0x801602004A010100,
	0x0801841008040880, 0x10010880C4200028, 0x0400004424040000,
	0x0401000142022100, 0x00A00010020A0002, 0x1010400204010810,
	0x0829910400840000, 0x0004235204010080, 0x1002008143082000,
	0x11840044440C2080, 0x2802A02104030440, 0x6100000900840401,
	0x1C20A15A90420200, 0x0088414004480280, 0x0000204242881100,
	0x0240080802809010,
}

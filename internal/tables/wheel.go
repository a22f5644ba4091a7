package tables

// WheelIncrements lists the 48 gaps of the {2,3,5,7} wheel, summing to
// 210 = 2*3*5*7. Starting from 7991 and repeatedly adding successive
// entries (cycling) visits exactly the candidates coprime to 2, 3, 5 and 7.
var WheelIncrements = [48]uint32{
	2, 4, 2, 4, 6, 2, 6, 4, 2, 4, 6, 6, 2, 6, 4, 2, 6, 4, 6, 8, 4, 2, 4, 2, 4, 8, 6, 4, 6,
	2, 4, 6, 2, 6, 6, 4, 2, 4, 6, 2, 6, 4, 2, 4, 2, 10, 2, 10,
}

// WheelStart is the candidate immediately below the first wheel step (the
// 1007th prime, 7993, minus its first increment of 2).
const WheelStart = 7991

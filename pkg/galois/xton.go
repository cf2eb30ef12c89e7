package galois

// characteristic maps (p, n) to the reduction vector xton for GF(p^n):
// x^n = xton[0] + xton[1]*x + ... + xton[n-1]*x^(n-1) (mod p).
// Prime fields (n == 1) are not listed; their vector is always [0].
var characteristic = map[order][]int{
	{2, 2}:  {1, 1},
	{2, 3}:  {1, 0, 1},
	{2, 4}:  {1, 0, 0, 1},
	{2, 5}:  {1, 0, 0, 1, 0},
	{2, 6}:  {1, 0, 0, 0, 0, 1},
	{2, 7}:  {1, 0, 0, 0, 0, 0, 1},
	{2, 8}:  {1, 0, 0, 0, 1, 1, 1, 0},
	{2, 9}:  {1, 0, 0, 0, 0, 1, 0, 0, 0},
	{2, 10}: {1, 0, 0, 0, 0, 0, 0, 1, 0, 0},
	{2, 11}: {1, 0, 0, 0, 0, 0, 0, 0, 0, 1, 0},
	{2, 12}: {1, 0, 0, 0, 1, 0, 0, 0, 0, 0, 1, 1},
	{2, 13}: {1, 0, 0, 0, 0, 0, 0, 0, 1, 0, 0, 1, 1},
	{2, 14}: {1, 0, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1, 1},
	{2, 15}: {1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1},
	{2, 16}: {1, 0, 0, 0, 1, 0, 0, 0, 0, 0, 0, 0, 0, 1, 0, 1},
	{2, 17}: {1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1, 0, 0},
	{2, 18}: {1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1, 0, 0, 0, 0, 0, 0},
	{2, 19}: {1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1, 0, 0, 1, 1},
	{2, 20}: {1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1, 0, 0},
	{2, 21}: {1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1, 0},
	{2, 22}: {1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1},
	{2, 23}: {1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1, 0, 0, 0, 0},
	{2, 24}: {1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 1},
	{2, 25}: {1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1, 0, 0},
	{2, 26}: {1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1, 0, 0, 0, 1, 1},
	{2, 27}: {1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1, 0, 0, 1, 1},
	{2, 28}: {1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1, 0, 0},
	{2, 29}: {1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1, 0},
	{3, 2}:  {1, 2},
	{3, 3}:  {2, 0, 1},
	{3, 4}:  {1, 0, 0, 2},
	{3, 5}:  {2, 0, 2, 0, 2},
	{3, 6}:  {1, 0, 0, 0, 0, 2},
	{3, 7}:  {2, 0, 0, 0, 2, 0, 2},
	{3, 8}:  {1, 0, 0, 0, 0, 2, 0, 0},
	{3, 9}:  {2, 0, 0, 0, 0, 2, 0, 2, 0},
	{3, 10}: {1, 0, 0, 0, 0, 0, 0, 2, 0, 2},
	{3, 11}: {2, 0, 0, 0, 2, 0, 0, 0, 0, 0, 2},
	{3, 12}: {1, 0, 0, 0, 0, 0, 0, 2, 0, 0, 0, 2},
	{3, 13}: {2, 0, 0, 0, 0, 0, 2, 0, 0, 0, 0, 0, 2},
	{3, 14}: {1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 2},
	{3, 15}: {2, 0, 0, 0, 2, 0, 0, 0, 0, 0, 0, 0, 0, 0, 2},
	{3, 16}: {1, 0, 0, 0, 0, 0, 0, 0, 0, 2, 0, 0, 0, 0, 0, 0},
	{3, 17}: {2, 0, 0, 0, 0, 0, 0, 0, 2, 0, 0, 0, 0, 0, 0, 0, 2},
	{3, 18}: {1, 0, 0, 0, 0, 2, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 2},
	{5, 2}:  {3, 4},
	{5, 3}:  {3, 0, 4},
	{5, 4}:  {2, 4, 0, 4},
	{5, 5}:  {3, 0, 4, 0, 0},
	{5, 6}:  {3, 0, 0, 0, 0, 4},
	{5, 7}:  {3, 0, 0, 0, 0, 0, 4},
	{5, 8}:  {2, 0, 0, 4, 0, 4, 0, 0},
	{5, 9}:  {2, 0, 0, 0, 0, 0, 4, 4, 0},
	{5, 10}: {2, 0, 0, 0, 0, 0, 0, 4, 0, 4},
	{5, 11}: {3, 0, 0, 0, 0, 0, 0, 0, 0, 0, 4},
	{5, 12}: {2, 0, 0, 0, 4, 0, 0, 4, 0, 0, 0, 0},
	{7, 2}:  {4, 6},
	{7, 3}:  {5, 6, 6},
	{7, 4}:  {4, 0, 6, 6},
	{7, 5}:  {3, 0, 0, 0, 6},
	{7, 6}:  {4, 0, 0, 0, 6, 6},
	{7, 7}:  {3, 0, 0, 0, 0, 6, 0},
	{7, 8}:  {4, 0, 0, 0, 0, 0, 0, 6},
	{7, 9}:  {5, 0, 0, 6, 0, 0, 0, 0, 6},
	{7, 10}: {4, 0, 0, 0, 0, 0, 0, 0, 6, 6},
	{11, 2}: {4, 10},
	{11, 3}: {6, 0, 10},
	{11, 4}: {9, 10, 0, 0},
	{11, 5}: {2, 0, 10, 10, 0},
	{11, 6}: {4, 10, 0, 0, 0, 10},
	{11, 7}: {6, 0, 0, 0, 0, 0, 10},
	{11, 8}: {9, 10, 0, 0, 10, 0, 0, 0},
	{13, 2}: {11, 12},
	{13, 3}: {6, 0, 12},
	{13, 4}: {11, 12, 0, 12},
	{13, 5}: {2, 12, 0, 12, 0},
	{13, 6}: {7, 0, 0, 12, 0, 12},
	{13, 7}: {7, 0, 0, 0, 12, 0, 0},
	{13, 8}: {11, 0, 0, 0, 0, 12, 12, 0},
	{17, 2}: {14, 16},
	{17, 3}: {3, 16, 0},
	{17, 4}: {12, 0, 0, 16},
	{17, 5}: {3, 0, 0, 0, 16},
	{17, 6}: {14, 0, 0, 0, 0, 16},
	{17, 7}: {3, 0, 0, 16, 0, 0, 0},
	{19, 2}: {17, 18},
	{19, 3}: {3, 0, 18},
	{19, 4}: {17, 0, 0, 18},
	{19, 5}: {3, 18, 0, 0, 0},
	{19, 6}: {16, 18, 0, 0, 0, 0},
	{19, 7}: {10, 0, 0, 0, 0, 18, 0},
	{23, 2}: {16, 22},
	{23, 3}: {7, 0, 22},
	{23, 4}: {12, 22, 0, 0},
	{23, 5}: {5, 0, 0, 0, 22},
	{23, 6}: {16, 0, 0, 0, 0, 22},
	{29, 2}: {26, 28},
	{29, 3}: {11, 28, 0},
	{29, 4}: {27, 0, 0, 28},
	{29, 5}: {3, 0, 0, 28, 0},
	{29, 6}: {26, 28, 0, 0, 0, 0},
	{31, 2}: {19, 30},
	{31, 3}: {3, 30, 0},
	{31, 4}: {18, 0, 0, 30},
	{31, 5}: {11, 0, 0, 30, 0},
	{31, 6}: {19, 0, 0, 0, 0, 30},
	{37, 2}: {32, 36},
	{37, 3}: {13, 0, 36},
	{37, 4}: {35, 36, 0, 0},
	{37, 5}: {5, 36, 0, 0, 0},
	{41, 2}: {29, 40},
	{41, 3}: {6, 40, 0},
	{41, 4}: {24, 40, 0, 0},
	{41, 5}: {6, 0, 0, 0, 40},
	{43, 2}: {40, 42},
	{43, 3}: {3, 42, 0},
	{43, 4}: {23, 42, 0, 0},
	{43, 5}: {3, 0, 0, 0, 42},
	{47, 2}: {34, 46},
	{47, 3}: {5, 0, 46},
	{47, 4}: {42, 0, 0, 46},
	{47, 5}: {5, 46, 0, 0, 0},
}

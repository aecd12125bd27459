package suggestion

import (
	"math/rand"
	"sync"
	"time"
)

// Estimates 示意用的時間、份量與熱量數值
// 資料來源沒有這些欄位，數值為均勻隨機抽樣，呼叫端不可當作真實資料
type Estimates struct {
	CookTimeMinutes int
	PrepTimeMinutes int
	Servings        int
	Calories        int
}

// 抽樣範圍
const (
	cookTimeMin = 15
	cookTimeMax = 45
	prepTimeMin = 5
	prepTimeMax = 20
	servingsMin = 2
	servingsMax = 4
	caloriesMin = 200
	caloriesMax = 700
)

// Estimator 產生示意數值；種子可注入以便測試取得確定性輸出
// 未來若接上真實的營養估算服務，替換此型別即可，不需動到比對與排序邏輯
type Estimator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewEstimator 創建估算器；seed 為 0 時改用當前時間作為種子
func NewEstimator(seed int64) *Estimator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Estimator{
		rng: rand.New(rand.NewSource(seed)),
	}
}

// Estimate 抽樣一組示意數值
func (e *Estimator) Estimate() Estimates {
	e.mu.Lock()
	defer e.mu.Unlock()

	return Estimates{
		CookTimeMinutes: e.intn(cookTimeMin, cookTimeMax),
		PrepTimeMinutes: e.intn(prepTimeMin, prepTimeMax),
		Servings:        e.intn(servingsMin, servingsMax),
		Calories:        e.intn(caloriesMin, caloriesMax),
	}
}

// intn 在 [min, max] 範圍內均勻抽樣，呼叫端需持有鎖
func (e *Estimator) intn(min, max int) int {
	return min + e.rng.Intn(max-min+1)
}

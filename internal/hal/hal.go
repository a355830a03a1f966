// Package hal 定义手环核心循环消费的硬件边界接口。
//
// 总线初始化、传感器驱动、ADC 采样、像素光栅化都在边界之外（外部协作者），
// 核心只通过这些接口读值 / 画帧。本层不定义错误：驱动初始化失败在进程启动时
// 就是致命错误，进入采样循环后所有调用视为必定成功。
package hal

// DigitalInput 数字输入（接触开关，佩戴检测）
type DigitalInput interface {
	Read() bool
}

// AnalogInput 模拟输入（ECG 生物信号通道，返回整数采样值）
type AnalogInput interface {
	Read() int
}

// Accelerometer 三轴加速度计，单位 m/s²（模值包含重力分量）
type Accelerometer interface {
	Read() (x, y, z float64)
}

// Display 单色显示屏表面（128x64）
// 每个 tick 完整清屏重绘，Commit 一次性刷新到设备
type Display interface {
	Clear()
	DrawText(x, y int, text string)
	DrawLine(x0, y0, x1, y1 int)
	Commit()
}

// Clock 单调时钟，毫秒精度
type Clock interface {
	NowMillis() int64
}

// RandSource 有界随机整数源，返回 [low, highExclusive) 内的均匀随机值
type RandSource interface {
	Next(low, highExclusive int) int
}

package logger

const MatchStartMsg = "比賽開始！ 場地 %vx%v, FPS: %d"
const MatchOverMsg = "比賽結束！ 原因: %s, 勝方: %s, 比分 %d:%d"
const PlayerScoredMsg = "%s 得分！ 比分 %d:%d"
const FrameSinkErrorMsg = "畫面輸出失敗: %v"

const SensorListenMsg = "感測器服務啟動 ws://%s%s"
const SensorConnectedMsg = "感測器已連線 (ip:%s)"
const SensorConnBrokenMsg = "感測器 %s 已經離線！"
const SensorPayloadErrorMsg = "感測器 %s 傳來無法解析的資料: %v"
const SensorQuitMsg = "感測器 %s 要求結束比賽"
const SensorShutdownErrorMsg = "感測器服務關閉失敗: %v"

const PlayerQuitMsg = "玩家按下離開"
const SoundInitFailedMsg = "音效初始化失敗，改為無聲模式: %v"

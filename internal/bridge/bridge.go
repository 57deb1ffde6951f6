package bridge

import (
	"fmt"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"go.uber.org/zap"

	"github.com/skoona/sknSensors-IRService/internal/config"
	"github.com/skoona/sknSensors-IRService/internal/engine"
	"github.com/skoona/sknSensors-IRService/internal/logging"
)

const (
	connectTimeout    = 10 * time.Second
	disconnectQuiesce = 250 // milliseconds, paho convention
	qosAtLeastOnce    = 1
)

// Bridge connects the engine to the device-integration broker: command
// strings in, receive reports and command echoes out, plus the settable
// receive-enable toggle.
type Bridge struct {
	client mqtt.Client
	eng    *engine.Engine

	commandTopic  string
	enableTopic   string
	resultTopic   string
	receivedTopic string
	sentTopic     string
	enabledTopic  string
	statusTopic   string
}

// New builds a bridge for the given broker configuration. Call Start to
// connect.
func New(cfg *config.Config, eng *engine.Engine) *Bridge {
	base := fmt.Sprintf("%s/%s", cfg.MQTT.BaseTopic, cfg.Device.Name)

	b := &Bridge{
		eng:           eng,
		commandTopic:  base + "/command/set",
		enableTopic:   base + "/enabled/set",
		resultTopic:   base + "/result",
		receivedTopic: base + "/received",
		sentTopic:     base + "/sent",
		enabledTopic:  base + "/enabled",
		statusTopic:   base + "/$state",
	}

	opts := mqtt.NewClientOptions().
		AddBroker(cfg.MQTT.Broker).
		SetClientID(cfg.ClientID()).
		SetUsername(cfg.MQTT.Username).
		SetPassword(cfg.MQTT.Password).
		SetAutoReconnect(true).
		SetOrderMatters(true).
		SetWill(b.statusTopic, "lost", qosAtLeastOnce, true).
		SetOnConnectHandler(b.onConnect).
		SetConnectionLostHandler(func(_ mqtt.Client, err error) {
			logging.Warn("Broker connection lost", zap.Error(err))
		})

	b.client = mqtt.NewClient(opts)

	// Status events flow out regardless of which surface produced them
	eng.OnStatus(func(kind, value string) {
		switch kind {
		case engine.StatusReceived:
			b.publish(b.receivedTopic, value, true)
		case engine.StatusSent:
			b.publish(b.sentTopic, value, true)
		}
	})

	return b
}

// Start connects to the broker. Subscriptions are (re)established by the
// connect handler so they survive reconnects.
func (b *Bridge) Start() error {
	token := b.client.Connect()
	if !token.WaitTimeout(connectTimeout) {
		return fmt.Errorf("broker connect timed out")
	}
	if err := token.Error(); err != nil {
		return fmt.Errorf("broker connect: %w", err)
	}
	return nil
}

// Stop publishes the offline state and disconnects.
func (b *Bridge) Stop() {
	if b.client.IsConnected() {
		b.publish(b.statusTopic, "disconnected", true)
		b.client.Disconnect(disconnectQuiesce)
	}
}

func (b *Bridge) onConnect(client mqtt.Client) {
	logging.Info("Broker connected",
		zap.String("command_topic", b.commandTopic),
		zap.String("enable_topic", b.enableTopic),
	)

	if token := client.Subscribe(b.commandTopic, qosAtLeastOnce, b.handleCommand); token.Wait() && token.Error() != nil {
		logging.Error("Command subscription failed", zap.Error(token.Error()))
	}
	if token := client.Subscribe(b.enableTopic, qosAtLeastOnce, b.handleEnable); token.Wait() && token.Error() != nil {
		logging.Error("Enable subscription failed", zap.Error(token.Error()))
	}

	b.publish(b.statusTopic, "ready", true)
	b.publishEnabled()
}

// handleCommand runs one inbound command through the engine and reports
// the outcome. Failures are reported with the original command string so
// the issuer can correlate; retry is the issuer's responsibility.
func (b *Bridge) handleCommand(_ mqtt.Client, msg mqtt.Message) {
	cmdStr := string(msg.Payload())
	logging.LogCommand("mqtt", cmdStr)

	echo, err := b.eng.Send(cmdStr)
	if err != nil {
		b.publish(b.resultTopic, fmt.Sprintf("error,%s,%v", cmdStr, err), false)
		return
	}
	b.publish(b.resultTopic, "ok,"+echo, false)
}

// handleEnable toggles receive reporting. Accepts "true"/"false" and the
// common "1"/"0" and "on"/"off" forms.
func (b *Bridge) handleEnable(_ mqtt.Client, msg mqtt.Message) {
	switch string(msg.Payload()) {
	case "true", "1", "on", "ON":
		b.eng.SetReceiveEnabled(true)
	case "false", "0", "off", "OFF":
		b.eng.SetReceiveEnabled(false)
	default:
		logging.Warn("Ignoring invalid enable payload",
			zap.String("payload", string(msg.Payload())),
		)
		return
	}
	b.publishEnabled()
}

func (b *Bridge) publishEnabled() {
	b.publish(b.enabledTopic, fmt.Sprintf("%t", b.eng.ReceiveEnabled()), true)
}

func (b *Bridge) publish(topic, payload string, retained bool) {
	token := b.client.Publish(topic, qosAtLeastOnce, retained, payload)
	go func() {
		if token.Wait() && token.Error() != nil {
			logging.Warn("Publish failed",
				zap.String("topic", topic),
				zap.Error(token.Error()),
			)
		}
	}()
}

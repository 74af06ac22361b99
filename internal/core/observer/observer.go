package observer

import "reflect"

// Observer receives values pushed by an Observable.
type Observer interface {
	Update(value any)
}

// Observable keeps an ordered registry of observers.
// It is not safe for concurrent use; all calls happen on the UI thread.
type Observable struct {
	observers []Observer
}

// Register appends observer to the registry. Registering the same observer
// twice makes it receive every notification twice.
func (observable *Observable) Register(observer Observer) {
	observable.observers = append(observable.observers, observer)
}

// Remove drops the first registered entry equal to observer. An observer
// whose dynamic type is not comparable matches nothing.
func (observable *Observable) Remove(observer Observer) {
	if observer == nil || !reflect.TypeOf(observer).Comparable() {
		return
	}
	for index, registered := range observable.observers {
		if registered == observer {
			observable.observers = append(observable.observers[:index], observable.observers[index+1:]...)
			return
		}
	}
}

// Notify delivers value to every registered observer in registration order.
// A panic raised by an observer propagates to the caller.
func (observable *Observable) Notify(value any) {
	for _, registered := range observable.observers {
		registered.Update(value)
	}
}

// Len returns the number of registered entries.
func (observable *Observable) Len() int {
	return len(observable.observers)
}
